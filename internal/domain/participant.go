package domain

import (
	"context"
	"fmt"
	"time"
)

// ParticipantStatus is the attendance status of a participant.
type ParticipantStatus string

const (
	StatusRegistered ParticipantStatus = "registered"
	StatusAttended   ParticipantStatus = "attended"
	StatusNoShow     ParticipantStatus = "no-show"
)

// Valid reports whether s is one of the known statuses.
func (s ParticipantStatus) Valid() bool {
	switch s {
	case StatusRegistered, StatusAttended, StatusNoShow:
		return true
	}
	return false
}

// Participant is a profile's registration for one event. ID equals the profile ID.
// swagger:model Participant
type Participant struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspace_id"`
	EventID     string `json:"event_id"`
	PersonFields
	Status    ParticipantStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// StatusPolicy decides which status changes are allowed. Bulk reset bypasses it.
type StatusPolicy interface {
	Allow(from, to ParticipantStatus) error
}

type strictStatusPolicy struct{}

// StrictStatusPolicy never lets an attended participant go back to another status.
func StrictStatusPolicy() StatusPolicy { return strictStatusPolicy{} }

func (strictStatusPolicy) Allow(from, to ParticipantStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, to)
	}
	if from == to {
		return nil
	}
	if from == StatusAttended {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

type permissiveStatusPolicy struct{}

// PermissiveStatusPolicy allows any change between known statuses.
func PermissiveStatusPolicy() StatusPolicy { return permissiveStatusPolicy{} }

func (permissiveStatusPolicy) Allow(_, to ParticipantStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, to)
	}
	return nil
}

// StatusPolicyFromName maps "strict" and "permissive" to a policy.
func StatusPolicyFromName(name string) (StatusPolicy, error) {
	switch name {
	case "", "strict":
		return StrictStatusPolicy(), nil
	case "permissive":
		return PermissiveStatusPolicy(), nil
	}
	return nil, fmt.Errorf("unknown status policy %q", name)
}

// ParticipantRepository defines the interface for participant storage. Every call is scoped
// to a workspace and event.
type ParticipantRepository interface {
	// CreateIfAbsent inserts the participant unless (event, ID) exists; it never overwrites.
	CreateIfAbsent(ctx context.Context, p *Participant) (created bool, err error)
	Get(ctx context.Context, workspaceID, eventID, id string) (*Participant, error)
	GetByIDNumber(ctx context.Context, workspaceID, eventID, idNumber string) (*Participant, error)
	ListByEvent(ctx context.Context, workspaceID, eventID string) ([]*Participant, error)
	// UpdateStatus sets status only while the stored status equals expected.
	// It returns ErrConcurrentUpdate when the stored status differs.
	UpdateStatus(ctx context.Context, workspaceID, eventID, id string, expected, status ParticipantStatus) (*Participant, error)
	Delete(ctx context.Context, workspaceID, eventID, id string) error
	DeleteByEvent(ctx context.Context, workspaceID, eventID string) (int64, error)
	ResetStatuses(ctx context.Context, workspaceID, eventID string) (int64, error)
	CountByProfile(ctx context.Context, workspaceID, profileID string) (int, error)
	DeleteByProfile(ctx context.Context, workspaceID, profileID string) (int64, error)
}

// Registration is the result of registering a person for an event.
type Registration struct {
	Participant    *Participant `json:"participant"`
	Profile        *Profile     `json:"profile"`
	ProfileCreated bool         `json:"profile_created"`
	// AlreadyRegistered is true when the person was already on the participant list.
	AlreadyRegistered bool `json:"already_registered"`
}

// CheckInOutcome describes the result of a check-in attempt.
type CheckInOutcome string

const (
	CheckInCheckedIn        CheckInOutcome = "checked_in"
	CheckInAlreadyCheckedIn CheckInOutcome = "already_checked_in"
	CheckInNotFound         CheckInOutcome = "not_found"
	CheckInQueued           CheckInOutcome = "queued"
	CheckInAlreadyQueued    CheckInOutcome = "already_queued"
)

// CheckInResult is returned by check-in operations. Participant is nil when not found.
type CheckInResult struct {
	Outcome     CheckInOutcome `json:"outcome"`
	IDNumber    string         `json:"id_number"`
	Participant *Participant   `json:"participant,omitempty"`
}

// ParticipantService manages the participant list of an event.
type ParticipantService interface {
	// Add writes a participant whose ID is the given profile ID. created is false when the
	// participant already existed; the stored record is returned unchanged in that case.
	Add(ctx context.Context, workspaceID, eventID, participantID string, fields PersonFields, status ParticipantStatus) (p *Participant, created bool, err error)
	// Register resolves the person's profile by ID number (creating it if needed) and adds it to the event.
	Register(ctx context.Context, workspaceID, eventID string, fields PersonFields) (*Registration, error)
	UpdateStatus(ctx context.Context, workspaceID, eventID, participantID string, status ParticipantStatus) (*Participant, error)
	// CheckIn marks the participant holding idNumber as attended.
	CheckIn(ctx context.Context, workspaceID, eventID, idNumber string) (*CheckInResult, error)
	Remove(ctx context.Context, workspaceID, eventID, participantID string) error
	ClearList(ctx context.Context, workspaceID, eventID string) (int64, error)
	ResetList(ctx context.Context, workspaceID, eventID string) (int64, error)
	List(ctx context.Context, workspaceID, eventID string) ([]*Participant, error)
}
