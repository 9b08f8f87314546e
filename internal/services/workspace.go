package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"eventattendance/internal/domain"
)

var slugRegexp = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type workspaceService struct {
	workspaceRepo  domain.WorkspaceRepository
	userRepo       domain.UserRepository
	contextTimeout time.Duration
}

func NewWorkspaceService(workspaceRepo domain.WorkspaceRepository, userRepo domain.UserRepository, timeout time.Duration) domain.WorkspaceService {
	return &workspaceService{
		workspaceRepo:  workspaceRepo,
		userRepo:       userRepo,
		contextTimeout: timeout,
	}
}

// slugify lowercases name and joins its alphanumeric runs with dashes.
func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
		default:
			dash = true
		}
	}
	return b.String()
}

func (s *workspaceService) Create(ctx context.Context, userID, name, slug string) (*domain.Workspace, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		slug = slugify(name)
	}
	if !slugRegexp.MatchString(slug) {
		return nil, fmt.Errorf("%w: slug must contain only lowercase letters, digits, and dashes", domain.ErrInvalidInput)
	}

	now := time.Now()
	ws := &domain.Workspace{Name: name, Slug: slug, CreatedBy: userID, CreatedAt: now, UpdatedAt: now}
	if err := s.workspaceRepo.Create(ctx, ws); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return nil, domain.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return ws, nil
}

func (s *workspaceService) Get(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ws, err := s.workspaceRepo.GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get workspace: %w", err)
	}
	return ws, nil
}

func (s *workspaceService) ListMine(ctx context.Context, userID string) ([]*domain.Workspace, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	list, err := s.workspaceRepo.ListByMember(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	return list, nil
}

func (s *workspaceService) AddMemberByEmail(ctx context.Context, workspaceID, callerID, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ok, err := s.workspaceRepo.IsMember(ctx, workspaceID, callerID)
	if err != nil {
		return nil, fmt.Errorf("check membership: %w", err)
	}
	if !ok {
		return nil, domain.ErrForbidden
	}
	user, err := s.userRepo.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if err := s.workspaceRepo.AddMember(ctx, workspaceID, user.ID); err != nil {
		if errors.Is(err, domain.ErrAlreadyMember) {
			return nil, domain.ErrAlreadyMember
		}
		return nil, fmt.Errorf("add member: %w", err)
	}
	return user, nil
}

// Delete removes the workspace with everything in it. Only the creator may do so.
func (s *workspaceService) Delete(ctx context.Context, workspaceID, callerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ws, err := s.workspaceRepo.GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get workspace: %w", err)
	}
	if ws.CreatedBy != callerID {
		return domain.ErrForbidden
	}
	if err := s.workspaceRepo.Delete(ctx, workspaceID); err != nil {
		return fmt.Errorf("delete workspace: %w", err)
	}
	return nil
}

func (s *workspaceService) IsMember(ctx context.Context, workspaceID, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.workspaceRepo.IsMember(ctx, workspaceID, userID)
}
