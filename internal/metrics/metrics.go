// Package metrics holds the Prometheus collectors for check-ins, imports, and the offline queue.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	checkIns    *prometheus.CounterVec
	importRows  *prometheus.CounterVec
	replays     *prometheus.CounterVec
	queueDepth  prometheus.Gauge
	rosterSize  prometheus.Gauge
	stationLive prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		checkIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "attendance",
			Name:      "checkins_total",
			Help:      "Check-in attempts by outcome.",
		}, []string{"outcome"}),
		importRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "attendance",
			Name:      "import_rows_total",
			Help:      "Imported spreadsheet rows by status.",
		}, []string{"status"}),
		replays: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "attendance",
			Name:      "offline_replays_total",
			Help:      "Offline check-in replays by result.",
		}, []string{"result"}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "attendance",
			Name:      "offline_queue_depth",
			Help:      "Check-ins waiting in the offline queue.",
		}),
		rosterSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "attendance",
			Name:      "station_roster_size",
			Help:      "Participants in the station's cached roster.",
		}),
		stationLive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "attendance",
			Name:      "station_online",
			Help:      "1 when the station can reach the server.",
		}),
	}
	reg.MustRegister(m.checkIns, m.importRows, m.replays, m.queueDepth, m.rosterSize, m.stationLive)
	return m
}

func (m *Metrics) CheckIn(outcome string) {
	if m == nil {
		return
	}
	m.checkIns.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ImportRow(status string) {
	if m == nil {
		return
	}
	m.importRows.WithLabelValues(status).Inc()
}

func (m *Metrics) Replay(result string) {
	if m == nil {
		return
	}
	m.replays.WithLabelValues(result).Inc()
}

func (m *Metrics) QueueDepth(n int) {
	if m == nil {
		return
	}
	m.queueDepth.Set(float64(n))
}

func (m *Metrics) RosterSize(n int) {
	if m == nil {
		return
	}
	m.rosterSize.Set(float64(n))
}

func (m *Metrics) Online(online bool) {
	if m == nil {
		return
	}
	if online {
		m.stationLive.Set(1)
		return
	}
	m.stationLive.Set(0)
}
