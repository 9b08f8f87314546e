package domain

import (
	"context"
	"time"
)

// DuplicateNameSuffix is appended to the name of a duplicated event.
const DuplicateNameSuffix = " (Copy)"

// Event belongs to a workspace and owns a participant list.
// swagger:model Event
type Event struct {
	ID          string     `json:"id"`
	WorkspaceID string     `json:"workspace_id"`
	Name        string     `json:"name"`
	Summary     string     `json:"summary"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date,omitempty"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// EventPatch holds optional event fields; nil fields are left unchanged.
type EventPatch struct {
	Name        *string
	Summary     *string
	Description *string
	Date        *time.Time
}

// Apply copies the set fields of the patch onto e.
func (p EventPatch) Apply(e *Event) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Summary != nil {
		e.Summary = *p.Summary
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		d := *p.Date
		e.Date = &d
	}
}

// EventRepository defines the interface for event storage.
// Delete removes the event's participants as well.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, workspaceID, id string) (*Event, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, workspaceID, id string) error
}

// EventService defines the business logic for events.
type EventService interface {
	Create(ctx context.Context, event *Event) error
	Get(ctx context.Context, workspaceID, eventID string) (*Event, error)
	List(ctx context.Context, workspaceID string) ([]*Event, error)
	Update(ctx context.Context, workspaceID, eventID string, patch EventPatch) (*Event, error)
	// Duplicate copies the event (not its participants) under the name "<name> (Copy)".
	Duplicate(ctx context.Context, workspaceID, eventID, userID string) (*Event, error)
	Delete(ctx context.Context, workspaceID, eventID string) error
}
