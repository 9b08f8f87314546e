package connectivity

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Pinger probes the remote API.
type Pinger interface {
	Ping(ctx context.Context) error
}

// signal holds the current state and fans transitions out on a channel that
// always carries the latest state, never a backlog.
type signal struct {
	mu      sync.Mutex
	online  bool
	changes chan bool
	closed  bool
}

func (s *signal) Online() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online
}

func (s *signal) Changes() <-chan bool {
	return s.changes
}

// set stores online and reports whether it was a transition.
func (s *signal) set(online bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.online == online {
		return false
	}
	s.online = online
	select {
	case <-s.changes:
	default:
	}
	s.changes <- online
	return true
}

func (s *signal) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.changes)
	}
}

// Monitor polls a Pinger and reports Online/Offline transitions.
type Monitor struct {
	signal
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewMonitor(pinger Pinger, interval time.Duration, logger *slog.Logger) *Monitor {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{
		signal:   signal{changes: make(chan bool, 1)},
		pinger:   pinger,
		interval: interval,
		timeout:  interval / 2,
		logger:   logger,
	}
}

// Start probes once synchronously, so Online is accurate on return, then keeps
// probing in the background until ctx is done. Changes is closed on exit.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	m.online = m.probe(ctx)
	m.mu.Unlock()

	go func() {
		defer m.close()
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				online := m.probe(ctx)
				if m.set(online) {
					m.logger.Info("connectivity changed", "online", online)
				}
			}
		}
	}()
}

func (m *Monitor) probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	if err := m.pinger.Ping(ctx); err != nil {
		m.logger.Debug("connectivity probe failed", "error", err)
		return false
	}
	return true
}

// Switch is a manually driven connectivity signal.
type Switch struct {
	signal
}

func NewSwitch(online bool) *Switch {
	return &Switch{signal: signal{online: online, changes: make(chan bool, 1)}}
}

// Set changes the state, emitting a transition when it differs.
func (s *Switch) Set(online bool) {
	s.set(online)
}

// Close closes the Changes channel.
func (s *Switch) Close() {
	s.close()
}
