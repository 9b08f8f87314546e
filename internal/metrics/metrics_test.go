package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.CheckIn("checked_in")
	m.CheckIn("checked_in")
	m.CheckIn("queued")
	m.ImportRow("created")
	m.Replay("applied")
	m.QueueDepth(4)
	m.RosterSize(120)
	m.Online(true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.checkIns.WithLabelValues("checked_in")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.checkIns.WithLabelValues("queued")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.importRows.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.replays.WithLabelValues("applied")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.queueDepth))
	assert.Equal(t, 120.0, testutil.ToFloat64(m.rosterSize))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.stationLive))

	m.Online(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.stationLive))
}

func TestMetrics_nilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.CheckIn("x")
		m.ImportRow("x")
		m.Replay("x")
		m.QueueDepth(1)
		m.RosterSize(1)
		m.Online(true)
	})
}
