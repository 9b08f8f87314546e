// Package checkinqueue holds the durable buffers a check-in station writes to while offline.
// Every backend keeps records in append order.
package checkinqueue

import (
	"context"
	"sync"

	"eventattendance/internal/domain"
)

// Memory is a slice-backed queue for tests and development. Records do not survive a restart.
type Memory struct {
	mu      sync.Mutex
	records []domain.OfflineCheckIn
}

func NewMemory() *Memory {
	return &Memory{}
}

func (q *Memory) Append(_ context.Context, rec domain.OfflineCheckIn) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.records = append(q.records, rec)
	return nil
}

func (q *Memory) List(_ context.Context) ([]domain.OfflineCheckIn, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]domain.OfflineCheckIn, len(q.records))
	copy(out, q.records)
	return out, nil
}

// Trim removes the n oldest records.
func (q *Memory) Trim(_ context.Context, n int) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if n >= len(q.records) {
		q.records = nil
		return nil
	}
	if n > 0 {
		q.records = append([]domain.OfflineCheckIn(nil), q.records[n:]...)
	}
	return nil
}

func (q *Memory) Len(_ context.Context) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.records), nil
}
