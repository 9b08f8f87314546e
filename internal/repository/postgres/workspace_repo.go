package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"eventattendance/internal/domain"
)

type workspaceRepository struct {
	DB *sql.DB
}

func NewWorkspaceRepository(db *sql.DB) domain.WorkspaceRepository {
	return &workspaceRepository{DB: db}
}

func (r *workspaceRepository) Create(ctx context.Context, ws *domain.Workspace) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO workspaces (name, slug, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, query, ws.Name, ws.Slug, ws.CreatedBy, ws.CreatedAt, ws.UpdatedAt).Scan(&ws.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSlug
		}
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO workspace_members (workspace_id, user_id) VALUES ($1, $2)`, ws.ID, ws.CreatedBy); err != nil {
		return fmt.Errorf("add creator: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	ws.Members = []string{ws.CreatedBy}
	return nil
}

func (r *workspaceRepository) GetByID(ctx context.Context, id string) (*domain.Workspace, error) {
	query := `
		SELECT w.id, w.name, w.slug, w.created_by, w.created_at, w.updated_at,
			COALESCE(array_agg(m.user_id::text ORDER BY m.user_id) FILTER (WHERE m.user_id IS NOT NULL), '{}')
		FROM workspaces w
		LEFT JOIN workspace_members m ON m.workspace_id = w.id
		WHERE w.id = $1
		GROUP BY w.id
	`
	ws := &domain.Workspace{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&ws.ID, &ws.Name, &ws.Slug, &ws.CreatedBy, &ws.CreatedAt, &ws.UpdatedAt, pq.Array(&ws.Members))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ws, nil
}

func (r *workspaceRepository) ListByMember(ctx context.Context, userID string) ([]*domain.Workspace, error) {
	query := `
		SELECT w.id, w.name, w.slug, w.created_by, w.created_at, w.updated_at
		FROM workspaces w
		JOIN workspace_members m ON m.workspace_id = w.id
		WHERE m.user_id = $1
		ORDER BY w.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.Workspace, 0)
	for rows.Next() {
		ws := &domain.Workspace{}
		if err := rows.Scan(&ws.ID, &ws.Name, &ws.Slug, &ws.CreatedBy, &ws.CreatedAt, &ws.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, ws)
	}
	return out, rows.Err()
}

func (r *workspaceRepository) AddMember(ctx context.Context, workspaceID, userID string) error {
	_, err := r.DB.ExecContext(ctx, `INSERT INTO workspace_members (workspace_id, user_id) VALUES ($1, $2)`, workspaceID, userID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyMember
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *workspaceRepository) IsMember(ctx context.Context, workspaceID, userID string) (bool, error) {
	var ok bool
	query := `SELECT EXISTS (SELECT 1 FROM workspace_members WHERE workspace_id = $1 AND user_id = $2)`
	if err := r.DB.QueryRowContext(ctx, query, workspaceID, userID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *workspaceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM workspaces WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
