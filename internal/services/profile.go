package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventattendance/internal/domain"

	"github.com/google/uuid"
)

type profileService struct {
	profileRepo     domain.ProfileRepository
	participantRepo domain.ParticipantRepository
	contextTimeout  time.Duration
}

func NewProfileService(profileRepo domain.ProfileRepository, participantRepo domain.ParticipantRepository, timeout time.Duration) domain.ProfileService {
	return &profileService{
		profileRepo:     profileRepo,
		participantRepo: participantRepo,
		contextTimeout:  timeout,
	}
}

// ResolveByIDNumber returns the workspace profile whose trimmed ID number matches.
func (s *profileService) ResolveByIDNumber(ctx context.Context, workspaceID, idNumber string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	idNumber = domain.NormalizeIDNumber(idNumber)
	if idNumber == "" {
		return nil, fmt.Errorf("%w: id number is required", domain.ErrInvalidInput)
	}
	p, err := s.profileRepo.GetByIDNumber(ctx, workspaceID, idNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("resolve profile: %w", err)
	}
	return p, nil
}

func (s *profileService) Create(ctx context.Context, workspaceID string, fields domain.PersonFields) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, created, err := createProfile(ctx, s.profileRepo, workspaceID, fields)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateIDNumber, p.IDNumber)
	}
	return p, nil
}

// createProfile inserts a profile keyed by its deterministic ID. When the ID number
// is already taken it returns the existing profile with created=false.
func createProfile(ctx context.Context, repo domain.ProfileRepository, workspaceID string, fields domain.PersonFields) (*domain.Profile, bool, error) {
	fields = fields.Normalize()
	if fields.IDNumber == "" || fields.FirstName == "" || fields.LastName == "" {
		return nil, false, fmt.Errorf("%w: id number, first name and last name are required", domain.ErrInvalidInput)
	}

	now := time.Now()
	p := &domain.Profile{
		ID:           domain.ProfileID(workspaceID, fields.IDNumber),
		WorkspaceID:  workspaceID,
		PersonFields: fields,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := repo.CreateIfAbsent(ctx, p)
	if err != nil {
		return nil, false, fmt.Errorf("create profile: %w", err)
	}
	if created {
		return p, true, nil
	}

	existing, err := repo.GetByIDNumber(ctx, workspaceID, fields.IDNumber)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("get profile: %w", err)
	}

	// The derived ID belongs to a profile whose ID number was later changed.
	p.ID = uuid.NewString()
	created, err = repo.CreateIfAbsent(ctx, p)
	if err != nil {
		return nil, false, fmt.Errorf("create profile: %w", err)
	}
	if !created {
		existing, err := repo.GetByIDNumber(ctx, workspaceID, fields.IDNumber)
		if err != nil {
			return nil, false, fmt.Errorf("get profile: %w", err)
		}
		return existing, false, nil
	}
	return p, true, nil
}

func (s *profileService) Get(ctx context.Context, workspaceID, profileID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, err := s.profileRepo.GetByID(ctx, workspaceID, profileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (s *profileService) Update(ctx context.Context, workspaceID, profileID string, patch domain.ProfilePatch) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, err := s.profileRepo.GetByID(ctx, workspaceID, profileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	fields := patch.Apply(p.PersonFields)
	if fields.IDNumber == "" || fields.FirstName == "" || fields.LastName == "" {
		return nil, fmt.Errorf("%w: id number, first name and last name cannot be empty", domain.ErrInvalidInput)
	}
	p.PersonFields = fields
	p.UpdatedAt = time.Now()

	if err := s.profileRepo.Update(ctx, p); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateIDNumber):
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateIDNumber, fields.IDNumber)
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return p, nil
}

// Delete removes the profile. A profile still registered to events is kept and
// ErrProfileInUse returned, unless cascade is set, in which case those participant
// records are deleted first.
func (s *profileService) Delete(ctx context.Context, workspaceID, profileID string, cascade bool) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.profileRepo.GetByID(ctx, workspaceID, profileID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get profile: %w", err)
	}

	if cascade {
		if _, err := s.participantRepo.DeleteByProfile(ctx, workspaceID, profileID); err != nil {
			return fmt.Errorf("delete participants: %w", err)
		}
	} else {
		n, err := s.participantRepo.CountByProfile(ctx, workspaceID, profileID)
		if err != nil {
			return fmt.Errorf("count participants: %w", err)
		}
		if n > 0 {
			return fmt.Errorf("%w: registered to %d event(s)", domain.ErrProfileInUse, n)
		}
	}

	if err := s.profileRepo.Delete(ctx, workspaceID, profileID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return domain.ErrNotFound
		case errors.Is(err, domain.ErrProfileInUse):
			return err
		}
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

func (s *profileService) List(ctx context.Context, workspaceID string) ([]*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	list, err := s.profileRepo.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	if list == nil {
		list = []*domain.Profile{}
	}
	return list, nil
}
