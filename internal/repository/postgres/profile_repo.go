package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventattendance/internal/domain"
)

const profileColumns = `id, workspace_id, id_number, first_name, last_name, middle_name, email, phone,
	college_department, course, year_level, section, created_at, updated_at`

type profileRepository struct {
	DB *sql.DB
}

func NewProfileRepository(db *sql.DB) domain.ProfileRepository {
	return &profileRepository{DB: db}
}

func scanProfile(s rowScanner) (*domain.Profile, error) {
	p := &domain.Profile{}
	err := s.Scan(&p.ID, &p.WorkspaceID, &p.IDNumber, &p.FirstName, &p.LastName, &p.MiddleName, &p.Email, &p.Phone,
		&p.CollegeDepartment, &p.Course, &p.YearLevel, &p.Section, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CreateIfAbsent relies on the primary key and the (workspace_id, id_number) unique index, so two
// concurrent creators of the same ID number cannot both succeed.
func (r *profileRepository) CreateIfAbsent(ctx context.Context, p *domain.Profile) (bool, error) {
	query := `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT DO NOTHING
		RETURNING id
	`
	var id string
	err := r.DB.QueryRowContext(ctx, query, p.ID, p.WorkspaceID, p.IDNumber, p.FirstName, p.LastName, p.MiddleName, p.Email, p.Phone,
		p.CollegeDepartment, p.Course, p.YearLevel, p.Section, p.CreatedAt, p.UpdatedAt).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *profileRepository) GetByID(ctx context.Context, workspaceID, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE workspace_id = $1 AND id = $2`
	return r.getOne(ctx, query, workspaceID, id)
}

func (r *profileRepository) GetByIDNumber(ctx context.Context, workspaceID, idNumber string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE workspace_id = $1 AND id_number = $2`
	return r.getOne(ctx, query, workspaceID, domain.NormalizeIDNumber(idNumber))
}

func (r *profileRepository) getOne(ctx context.Context, query string, args ...any) (*domain.Profile, error) {
	p, err := scanProfile(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE workspace_id = $1 ORDER BY last_name, first_name, id_number`
	rows, err := r.DB.QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	profiles := make([]*domain.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *profileRepository) Update(ctx context.Context, p *domain.Profile) error {
	query := `
		UPDATE profiles SET id_number = $3, first_name = $4, last_name = $5, middle_name = $6, email = $7, phone = $8,
			college_department = $9, course = $10, year_level = $11, section = $12, updated_at = $13
		WHERE workspace_id = $1 AND id = $2
	`
	result, err := r.DB.ExecContext(ctx, query, p.WorkspaceID, p.ID, p.IDNumber, p.FirstName, p.LastName, p.MiddleName, p.Email, p.Phone,
		p.CollegeDepartment, p.Course, p.YearLevel, p.Section, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateIDNumber
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepository) Delete(ctx context.Context, workspaceID, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM profiles WHERE workspace_id = $1 AND id = $2`, workspaceID, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProfileInUse
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
