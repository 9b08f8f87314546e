package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// profileNamespace seeds deterministic profile IDs.
var profileNamespace = uuid.MustParse("6f1c2a7e-4b0d-5d8e-9a43-2f8b1c0e7d51")

// NormalizeIDNumber trims surrounding whitespace. Comparisons are otherwise exact.
func NormalizeIDNumber(idNumber string) string {
	return strings.TrimSpace(idNumber)
}

// ProfileID derives the stable profile ID for an ID number inside a workspace.
func ProfileID(workspaceID, idNumber string) string {
	return uuid.NewSHA1(profileNamespace, []byte(workspaceID+"/"+NormalizeIDNumber(idNumber))).String()
}

// PersonFields are the personal fields shared by profiles and participants.
type PersonFields struct {
	IDNumber          string `json:"id_number" validate:"required"`
	FirstName         string `json:"first_name" validate:"required"`
	LastName          string `json:"last_name" validate:"required"`
	MiddleName        string `json:"middle_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	CollegeDepartment string `json:"college_department"`
	Course            string `json:"course"`
	YearLevel         string `json:"year_level"`
	Section           string `json:"section"`
}

// Normalize trims every field.
func (f PersonFields) Normalize() PersonFields {
	return PersonFields{
		IDNumber:          NormalizeIDNumber(f.IDNumber),
		FirstName:         strings.TrimSpace(f.FirstName),
		LastName:          strings.TrimSpace(f.LastName),
		MiddleName:        strings.TrimSpace(f.MiddleName),
		Email:             strings.TrimSpace(f.Email),
		Phone:             strings.TrimSpace(f.Phone),
		CollegeDepartment: strings.TrimSpace(f.CollegeDepartment),
		Course:            strings.TrimSpace(f.Course),
		YearLevel:         strings.TrimSpace(f.YearLevel),
		Section:           strings.TrimSpace(f.Section),
	}
}

// Profile is a reusable identity record of a person within a workspace.
// At most one profile exists per (workspace, ID number).
// swagger:model Profile
type Profile struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspace_id"`
	PersonFields
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfilePatch holds optional profile fields; nil fields are left unchanged.
type ProfilePatch struct {
	IDNumber          *string `json:"id_number"`
	FirstName         *string `json:"first_name"`
	LastName          *string `json:"last_name"`
	MiddleName        *string `json:"middle_name"`
	Email             *string `json:"email"`
	Phone             *string `json:"phone"`
	CollegeDepartment *string `json:"college_department"`
	Course            *string `json:"course"`
	YearLevel         *string `json:"year_level"`
	Section           *string `json:"section"`
}

// Apply copies the set fields onto f and returns the normalized result.
func (p ProfilePatch) Apply(f PersonFields) PersonFields {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&f.IDNumber, p.IDNumber)
	set(&f.FirstName, p.FirstName)
	set(&f.LastName, p.LastName)
	set(&f.MiddleName, p.MiddleName)
	set(&f.Email, p.Email)
	set(&f.Phone, p.Phone)
	set(&f.CollegeDepartment, p.CollegeDepartment)
	set(&f.Course, p.Course)
	set(&f.YearLevel, p.YearLevel)
	set(&f.Section, p.Section)
	return f.Normalize()
}

// ProfileRepository defines the interface for profile storage.
type ProfileRepository interface {
	// CreateIfAbsent inserts the profile unless its ID or (workspace, ID number) already exists.
	// It reports whether a row was written; it never overwrites.
	CreateIfAbsent(ctx context.Context, p *Profile) (created bool, err error)
	GetByID(ctx context.Context, workspaceID, id string) (*Profile, error)
	GetByIDNumber(ctx context.Context, workspaceID, idNumber string) (*Profile, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]*Profile, error)
	// Update writes all person fields. A clash with another profile's ID number returns ErrDuplicateIDNumber.
	Update(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, workspaceID, id string) error
}

// ProfileService covers identity resolution and profile management.
type ProfileService interface {
	// ResolveByIDNumber returns the workspace profile holding the trimmed ID number, or ErrNotFound.
	ResolveByIDNumber(ctx context.Context, workspaceID, idNumber string) (*Profile, error)
	Create(ctx context.Context, workspaceID string, fields PersonFields) (*Profile, error)
	Get(ctx context.Context, workspaceID, profileID string) (*Profile, error)
	Update(ctx context.Context, workspaceID, profileID string, patch ProfilePatch) (*Profile, error)
	// Delete fails with ErrProfileInUse while participants reference the profile, unless cascade is set.
	Delete(ctx context.Context, workspaceID, profileID string, cascade bool) error
	List(ctx context.Context, workspaceID string) ([]*Profile, error)
}
