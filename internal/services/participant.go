package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventattendance/internal/domain"
	"eventattendance/internal/metrics"
)

// maxStatusRetries bounds how often UpdateStatus re-reads after losing a concurrent write.
const maxStatusRetries = 3

type participantService struct {
	eventRepo       domain.EventRepository
	profileRepo     domain.ProfileRepository
	participantRepo domain.ParticipantRepository
	policy          domain.StatusPolicy
	emailService    domain.EmailService
	logger          *slog.Logger
	metrics         *metrics.Metrics
	contextTimeout  time.Duration
}

func NewParticipantService(
	eventRepo domain.EventRepository,
	profileRepo domain.ProfileRepository,
	participantRepo domain.ParticipantRepository,
	policy domain.StatusPolicy,
	emailService domain.EmailService,
	logger *slog.Logger,
	m *metrics.Metrics,
	timeout time.Duration,
) domain.ParticipantService {
	if policy == nil {
		policy = domain.StrictStatusPolicy()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &participantService{
		eventRepo:       eventRepo,
		profileRepo:     profileRepo,
		participantRepo: participantRepo,
		policy:          policy,
		emailService:    emailService,
		logger:          logger,
		metrics:         m,
		contextTimeout:  timeout,
	}
}

// Add registers the profile identified by participantID to the event. An existing
// registration is returned unchanged with created=false.
func (s *participantService) Add(ctx context.Context, workspaceID, eventID, participantID string, fields domain.PersonFields, status domain.ParticipantStatus) (*domain.Participant, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if status == "" {
		status = domain.StatusRegistered
	}
	if !status.Valid() {
		return nil, false, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	if err := s.ensureEvent(ctx, workspaceID, eventID); err != nil {
		return nil, false, err
	}

	profile, err := s.profileRepo.GetByID(ctx, workspaceID, participantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, fmt.Errorf("%w: profile %s", domain.ErrNotFound, participantID)
		}
		return nil, false, fmt.Errorf("get profile: %w", err)
	}

	fields = fields.Normalize()
	if fields.IDNumber == "" {
		fields = profile.PersonFields
	}
	if fields.IDNumber != profile.IDNumber {
		return nil, false, fmt.Errorf("%w: id number does not match profile", domain.ErrInvalidInput)
	}
	return s.addParticipant(ctx, workspaceID, eventID, profile.ID, fields, status)
}

func (s *participantService) addParticipant(ctx context.Context, workspaceID, eventID, profileID string, fields domain.PersonFields, status domain.ParticipantStatus) (*domain.Participant, bool, error) {
	now := time.Now()
	p := &domain.Participant{
		ID:           profileID,
		WorkspaceID:  workspaceID,
		EventID:      eventID,
		PersonFields: fields,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := s.participantRepo.CreateIfAbsent(ctx, p)
	if err != nil {
		return nil, false, fmt.Errorf("create participant: %w", err)
	}
	if created {
		return p, true, nil
	}
	existing, err := s.participantRepo.Get(ctx, workspaceID, eventID, profileID)
	if err != nil {
		return nil, false, fmt.Errorf("get participant: %w", err)
	}
	return existing, false, nil
}

// Register resolves the submitted ID number to a profile, creating one when absent,
// and adds it to the event. A confirmation email is sent for new registrations.
func (s *participantService) Register(ctx context.Context, workspaceID, eventID string, fields domain.PersonFields) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	fields = fields.Normalize()
	if fields.IDNumber == "" || fields.FirstName == "" || fields.LastName == "" {
		return nil, fmt.Errorf("%w: id number, first name and last name are required", domain.ErrInvalidInput)
	}

	event, err := s.eventRepo.GetByID(ctx, workspaceID, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	profile, profileCreated, err := createProfile(ctx, s.profileRepo, workspaceID, fields)
	if err != nil {
		return nil, err
	}

	p, created, err := s.addParticipant(ctx, workspaceID, eventID, profile.ID, fields, domain.StatusRegistered)
	if err != nil {
		return nil, err
	}

	reg := &domain.Registration{
		Participant:       p,
		Profile:           profile,
		ProfileCreated:    profileCreated,
		AlreadyRegistered: !created,
	}
	if created {
		s.sendConfirmation(ctx, event, p)
	}
	return reg, nil
}

func (s *participantService) sendConfirmation(ctx context.Context, event *domain.Event, p *domain.Participant) {
	if s.emailService == nil || p.Email == "" {
		return
	}
	data := &domain.RegistrationEmailData{
		Email:     p.Email,
		FirstName: p.FirstName,
		IDNumber:  p.IDNumber,
		EventName: event.Name,
	}
	if event.Date != nil {
		data.EventDate = event.Date.Format("January 2, 2006")
	}
	if err := s.emailService.SendRegistrationConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "registration confirmation not sent",
			"event_id", event.ID, "participant_id", p.ID, "error", err)
	}
}

func (s *participantService) UpdateStatus(ctx context.Context, workspaceID, eventID, participantID string, status domain.ParticipantStatus) (*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.updateStatus(ctx, workspaceID, eventID, participantID, status)
}

// updateStatus applies the status policy against the stored status and writes
// only if that status is still current, re-reading on a lost race.
func (s *participantService) updateStatus(ctx context.Context, workspaceID, eventID, participantID string, status domain.ParticipantStatus) (*domain.Participant, error) {
	for attempt := 0; ; attempt++ {
		cur, err := s.participantRepo.Get(ctx, workspaceID, eventID, participantID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, fmt.Errorf("get participant: %w", err)
		}
		if err := s.policy.Allow(cur.Status, status); err != nil {
			return nil, err
		}
		if cur.Status == status {
			return cur, nil
		}

		updated, err := s.participantRepo.UpdateStatus(ctx, workspaceID, eventID, participantID, cur.Status, status)
		switch {
		case err == nil:
			return updated, nil
		case errors.Is(err, domain.ErrConcurrentUpdate) && attempt < maxStatusRetries:
			continue
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update participant status: %w", err)
	}
}

// CheckIn marks the event participant holding idNumber as attended. An unknown ID
// number is reported as an outcome, not an error.
func (s *participantService) CheckIn(ctx context.Context, workspaceID, eventID, idNumber string) (*domain.CheckInResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	idNumber = domain.NormalizeIDNumber(idNumber)
	if idNumber == "" {
		return nil, fmt.Errorf("%w: id number is required", domain.ErrInvalidInput)
	}
	res := &domain.CheckInResult{IDNumber: idNumber}

	p, err := s.participantRepo.GetByIDNumber(ctx, workspaceID, eventID, idNumber)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		res.Outcome = domain.CheckInNotFound
		s.metrics.CheckIn(string(res.Outcome))
		return res, nil
	case err != nil:
		return nil, fmt.Errorf("get participant: %w", err)
	}

	if p.Status == domain.StatusAttended {
		res.Outcome = domain.CheckInAlreadyCheckedIn
		res.Participant = p
		s.metrics.CheckIn(string(res.Outcome))
		return res, nil
	}

	updated, err := s.updateStatus(ctx, workspaceID, eventID, p.ID, domain.StatusAttended)
	if err != nil {
		return nil, err
	}
	res.Outcome = domain.CheckInCheckedIn
	res.Participant = updated
	s.metrics.CheckIn(string(res.Outcome))
	return res, nil
}

func (s *participantService) Remove(ctx context.Context, workspaceID, eventID, participantID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.participantRepo.Delete(ctx, workspaceID, eventID, participantID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete participant: %w", err)
	}
	return nil
}

// ClearList deletes every participant of the event.
func (s *participantService) ClearList(ctx context.Context, workspaceID, eventID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.ensureEvent(ctx, workspaceID, eventID); err != nil {
		return 0, err
	}
	n, err := s.participantRepo.DeleteByEvent(ctx, workspaceID, eventID)
	if err != nil {
		return 0, fmt.Errorf("clear participants: %w", err)
	}
	return n, nil
}

// ResetList sets every participant of the event back to registered. It is an
// administrative reset and is not subject to the status policy.
func (s *participantService) ResetList(ctx context.Context, workspaceID, eventID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.ensureEvent(ctx, workspaceID, eventID); err != nil {
		return 0, err
	}
	n, err := s.participantRepo.ResetStatuses(ctx, workspaceID, eventID)
	if err != nil {
		return 0, fmt.Errorf("reset participants: %w", err)
	}
	return n, nil
}

func (s *participantService) List(ctx context.Context, workspaceID, eventID string) ([]*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	list, err := s.participantRepo.ListByEvent(ctx, workspaceID, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	if list == nil {
		list = []*domain.Participant{}
	}
	return list, nil
}

func (s *participantService) ensureEvent(ctx context.Context, workspaceID, eventID string) error {
	if _, err := s.eventRepo.GetByID(ctx, workspaceID, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	return nil
}
