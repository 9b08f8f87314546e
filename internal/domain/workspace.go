package domain

import (
	"context"
	"time"
)

// Workspace is the isolation boundary for profiles, events, and participants.
// swagger:model Workspace
type Workspace struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedBy string    `json:"created_by"`
	Members   []string  `json:"members"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WorkspaceRepository defines the interface for workspace storage.
// Create must also record the creator as the first member.
type WorkspaceRepository interface {
	Create(ctx context.Context, ws *Workspace) error
	GetByID(ctx context.Context, id string) (*Workspace, error)
	ListByMember(ctx context.Context, userID string) ([]*Workspace, error)
	AddMember(ctx context.Context, workspaceID, userID string) error
	IsMember(ctx context.Context, workspaceID, userID string) (bool, error)
	Delete(ctx context.Context, id string) error
}

// WorkspaceService defines workspace management and the membership check used by the HTTP layer.
type WorkspaceService interface {
	Create(ctx context.Context, userID, name, slug string) (*Workspace, error)
	Get(ctx context.Context, workspaceID string) (*Workspace, error)
	ListMine(ctx context.Context, userID string) ([]*Workspace, error)
	AddMemberByEmail(ctx context.Context, workspaceID, callerID, email string) (*User, error)
	Delete(ctx context.Context, workspaceID, callerID string) error
	IsMember(ctx context.Context, workspaceID, userID string) (bool, error)
}
