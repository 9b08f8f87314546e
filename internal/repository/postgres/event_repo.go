package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventattendance/internal/domain"
)

const eventColumns = `id, workspace_id, name, summary, description, date, COALESCE(created_by::text, ''), created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func scanEvent(s rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var dateNull sql.NullTime
	if err := s.Scan(&e.ID, &e.WorkspaceID, &e.Name, &e.Summary, &e.Description, &dateNull, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	if dateNull.Valid {
		e.Date = &dateNull.Time
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (workspace_id, name, summary, description, date, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, e.WorkspaceID, e.Name, e.Summary, e.Description, e.Date, e.CreatedBy, e.CreatedAt, e.UpdatedAt).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, workspaceID, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE workspace_id = $1 AND id = $2`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, workspaceID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE workspace_id = $1 ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events SET name = $3, summary = $4, description = $5, date = $6, updated_at = $7
		WHERE workspace_id = $1 AND id = $2
	`
	result, err := r.DB.ExecContext(ctx, query, e.WorkspaceID, e.ID, e.Name, e.Summary, e.Description, e.Date, e.UpdatedAt)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the event; participants go with it through ON DELETE CASCADE.
func (r *eventRepository) Delete(ctx context.Context, workspaceID, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE workspace_id = $1 AND id = $2`, workspaceID, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
