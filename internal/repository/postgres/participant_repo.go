package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventattendance/internal/domain"
)

const participantColumns = `id, workspace_id, event_id, id_number, first_name, last_name, middle_name, email, phone,
	college_department, course, year_level, section, status, created_at, updated_at`

type participantRepository struct {
	DB *sql.DB
}

func NewParticipantRepository(db *sql.DB) domain.ParticipantRepository {
	return &participantRepository{DB: db}
}

func scanParticipant(s rowScanner) (*domain.Participant, error) {
	p := &domain.Participant{}
	err := s.Scan(&p.ID, &p.WorkspaceID, &p.EventID, &p.IDNumber, &p.FirstName, &p.LastName, &p.MiddleName, &p.Email, &p.Phone,
		&p.CollegeDepartment, &p.Course, &p.YearLevel, &p.Section, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) CreateIfAbsent(ctx context.Context, p *domain.Participant) (bool, error) {
	query := `
		INSERT INTO participants (` + participantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (event_id, id) DO NOTHING
		RETURNING id
	`
	var id string
	err := r.DB.QueryRowContext(ctx, query, p.ID, p.WorkspaceID, p.EventID, p.IDNumber, p.FirstName, p.LastName, p.MiddleName, p.Email, p.Phone,
		p.CollegeDepartment, p.Course, p.YearLevel, p.Section, p.Status, p.CreatedAt, p.UpdatedAt).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		if isForeignKeyViolation(err) {
			return false, domain.ErrNotFound
		}
		return false, err
	}
	return true, nil
}

func (r *participantRepository) Get(ctx context.Context, workspaceID, eventID, id string) (*domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE workspace_id = $1 AND event_id = $2 AND id = $3`
	return r.getOne(ctx, query, workspaceID, eventID, id)
}

func (r *participantRepository) GetByIDNumber(ctx context.Context, workspaceID, eventID, idNumber string) (*domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE workspace_id = $1 AND event_id = $2 AND id_number = $3 LIMIT 1`
	return r.getOne(ctx, query, workspaceID, eventID, domain.NormalizeIDNumber(idNumber))
}

func (r *participantRepository) getOne(ctx context.Context, query string, args ...any) (*domain.Participant, error) {
	p, err := scanParticipant(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) ListByEvent(ctx context.Context, workspaceID, eventID string) ([]*domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE workspace_id = $1 AND event_id = $2 ORDER BY created_at, id`
	rows, err := r.DB.QueryContext(ctx, query, workspaceID, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.Participant, 0)
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *participantRepository) UpdateStatus(ctx context.Context, workspaceID, eventID, id string, expected, status domain.ParticipantStatus) (*domain.Participant, error) {
	query := `
		UPDATE participants SET status = $4, updated_at = NOW()
		WHERE workspace_id = $1 AND event_id = $2 AND id = $3 AND status = $5
		RETURNING ` + participantColumns
	p, err := scanParticipant(r.DB.QueryRowContext(ctx, query, workspaceID, eventID, id, status, expected))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if _, err := r.Get(ctx, workspaceID, eventID, id); err != nil {
		return nil, err
	}
	return nil, domain.ErrConcurrentUpdate
}

func (r *participantRepository) Delete(ctx context.Context, workspaceID, eventID, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM participants WHERE workspace_id = $1 AND event_id = $2 AND id = $3`, workspaceID, eventID, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *participantRepository) DeleteByEvent(ctx context.Context, workspaceID, eventID string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM participants WHERE workspace_id = $1 AND event_id = $2`, workspaceID, eventID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *participantRepository) ResetStatuses(ctx context.Context, workspaceID, eventID string) (int64, error) {
	query := `UPDATE participants SET status = $3, updated_at = NOW() WHERE workspace_id = $1 AND event_id = $2`
	result, err := r.DB.ExecContext(ctx, query, workspaceID, eventID, domain.StatusRegistered)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *participantRepository) CountByProfile(ctx context.Context, workspaceID, profileID string) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM participants WHERE workspace_id = $1 AND id = $2`, workspaceID, profileID).Scan(&n)
	return n, err
}

func (r *participantRepository) DeleteByProfile(ctx context.Context, workspaceID, profileID string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM participants WHERE workspace_id = $1 AND id = $2`, workspaceID, profileID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
