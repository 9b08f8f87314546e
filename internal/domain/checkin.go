package domain

import (
	"context"
	"strings"
	"time"
)

// OfflineQueueKey is the storage key of the buffered check-in list.
const OfflineQueueKey = "offline_checkins"

// StationQueueKey names the list one station buffers into. A station trims its
// list by position after a replay, so no two stations may share one.
func StationQueueKey(workspaceID, eventID, stationID string) string {
	return strings.Join([]string{OfflineQueueKey, workspaceID, eventID, stationID}, ":")
}

// OfflineCheckIn is a check-in captured while the station had no connectivity.
type OfflineCheckIn struct {
	ParticipantID string    `json:"participantId"`
	IDNumber      string    `json:"idNumber"`
	Timestamp     time.Time `json:"timestamp"`
	WorkspaceID   string    `json:"workspaceId"`
	EventID       string    `json:"eventId"`
	Attempts      int       `json:"attempts,omitempty"`
}

// CheckInQueue is a durable FIFO of offline check-ins.
type CheckInQueue interface {
	Append(ctx context.Context, rec OfflineCheckIn) error
	// List returns all buffered records, oldest first.
	List(ctx context.Context) ([]OfflineCheckIn, error)
	// Trim removes the n oldest records.
	Trim(ctx context.Context, n int) error
	Len(ctx context.Context) (int, error)
}

// RosterClient is the station's view of the server.
type RosterClient interface {
	ListParticipants(ctx context.Context, workspaceID, eventID string) ([]*Participant, error)
	UpdateParticipantStatus(ctx context.Context, workspaceID, eventID, participantID string, status ParticipantStatus) error
}

// Connectivity reports whether the server is reachable and signals transitions.
type Connectivity interface {
	Online() bool
	// Changes delivers the new state after every transition.
	Changes() <-chan bool
}

// SyncReport summarizes one replay of the offline queue.
type SyncReport struct {
	Replayed int `json:"replayed"`
	// Deduplicated records were already attended on the server and needed no call.
	Deduplicated int `json:"deduplicated"`
	Retained     int `json:"retained"`
	Dropped      int `json:"dropped"`
}

// StationStatus is a snapshot of the station state.
type StationStatus struct {
	Online       bool      `json:"online"`
	Pending      int       `json:"pending"`
	RosterSize   int       `json:"roster_size"`
	LastSyncedAt time.Time `json:"last_synced_at"`
}

// CheckInStation performs check-ins for one event with offline buffering.
type CheckInStation interface {
	Refresh(ctx context.Context) error
	CheckIn(ctx context.Context, idNumber string) (*CheckInResult, error)
	Sync(ctx context.Context) (*SyncReport, error)
	Status(ctx context.Context) (*StationStatus, error)
	// Run replays the queue on every offline-to-online transition until ctx is done.
	Run(ctx context.Context) error
}
