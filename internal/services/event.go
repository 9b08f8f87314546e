package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventattendance/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) Create(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if event.WorkspaceID == "" {
		return fmt.Errorf("%w: workspace is required", domain.ErrInvalidInput)
	}
	event.Name = strings.TrimSpace(event.Name)
	if event.Name == "" {
		return fmt.Errorf("%w: event name is required", domain.ErrInvalidInput)
	}

	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) Get(ctx context.Context, workspaceID, eventID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, workspaceID, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context, workspaceID string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) Update(ctx context.Context, workspaceID, eventID string, patch domain.EventPatch) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, fmt.Errorf("%w: event name cannot be empty", domain.ErrInvalidInput)
	}

	event, err := s.eventRepo.GetByID(ctx, workspaceID, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	patch.Apply(event)
	event.Name = strings.TrimSpace(event.Name)
	event.UpdatedAt = time.Now()

	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

// Duplicate copies the event's details into a new event named "<name> (Copy)".
// Participants are not copied.
func (s *eventService) Duplicate(ctx context.Context, workspaceID, eventID, userID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	src, err := s.eventRepo.GetByID(ctx, workspaceID, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	now := time.Now()
	dup := &domain.Event{
		WorkspaceID: src.WorkspaceID,
		Name:        src.Name + domain.DuplicateNameSuffix,
		Summary:     src.Summary,
		Description: src.Description,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if src.Date != nil {
		d := *src.Date
		dup.Date = &d
	}
	if err := s.eventRepo.Create(ctx, dup); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return dup, nil
}

func (s *eventService) Delete(ctx context.Context, workspaceID, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, workspaceID, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
