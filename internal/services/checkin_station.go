package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"eventattendance/internal/domain"
	"eventattendance/internal/metrics"
)

const defaultMaxReplayAttempts = 5

// StationConfig identifies the event a check-in station serves.
type StationConfig struct {
	WorkspaceID string
	EventID     string
	// MaxReplayAttempts is how many failed replays a buffered check-in survives
	// before it is dropped.
	MaxReplayAttempts int
}

type checkInStation struct {
	cfg     StationConfig
	roster  domain.RosterClient
	queue   domain.CheckInQueue
	conn    domain.Connectivity
	logger  *slog.Logger
	metrics *metrics.Metrics

	// syncMu serializes Sync so a manual trigger and a reconnect never replay twice.
	syncMu sync.Mutex

	mu           sync.Mutex
	byIDNumber   map[string]*domain.Participant
	byID         map[string]*domain.Participant
	queued       map[string]bool
	lastSyncedAt time.Time
}

// NewCheckInStation returns a station that checks participants in against the
// remote roster while online and buffers check-ins in queue while offline.
func NewCheckInStation(cfg StationConfig, roster domain.RosterClient, queue domain.CheckInQueue, conn domain.Connectivity, logger *slog.Logger, m *metrics.Metrics) domain.CheckInStation {
	if cfg.MaxReplayAttempts < 1 {
		cfg.MaxReplayAttempts = defaultMaxReplayAttempts
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &checkInStation{
		cfg:        cfg,
		roster:     roster,
		queue:      queue,
		conn:       conn,
		logger:     logger.With("workspace_id", cfg.WorkspaceID, "event_id", cfg.EventID),
		metrics:    m,
		byIDNumber: map[string]*domain.Participant{},
		byID:       map[string]*domain.Participant{},
		queued:     map[string]bool{},
	}
}

// Refresh reloads the roster from the server.
func (s *checkInStation) Refresh(ctx context.Context) error {
	list, err := s.roster.ListParticipants(ctx, s.cfg.WorkspaceID, s.cfg.EventID)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}
	byIDNumber := make(map[string]*domain.Participant, len(list))
	byID := make(map[string]*domain.Participant, len(list))
	for _, p := range list {
		byIDNumber[domain.NormalizeIDNumber(p.IDNumber)] = p
		byID[p.ID] = p
	}

	s.mu.Lock()
	s.byIDNumber = byIDNumber
	s.byID = byID
	s.mu.Unlock()

	s.metrics.RosterSize(len(list))
	return nil
}

func (s *checkInStation) CheckIn(ctx context.Context, idNumber string) (*domain.CheckInResult, error) {
	idNumber = domain.NormalizeIDNumber(idNumber)
	res := &domain.CheckInResult{IDNumber: idNumber}

	s.mu.Lock()
	p, ok := s.byIDNumber[idNumber]
	switch {
	case !ok:
		res.Outcome = domain.CheckInNotFound
	case p.Status == domain.StatusAttended:
		res.Outcome = domain.CheckInAlreadyCheckedIn
	case s.queued[p.ID]:
		res.Outcome = domain.CheckInAlreadyQueued
	}
	if res.Outcome != "" {
		s.mu.Unlock()
		res.Participant = p
		s.metrics.CheckIn(string(res.Outcome))
		return res, nil
	}
	res.Participant = p

	if !s.conn.Online() {
		defer s.mu.Unlock()
		rec := domain.OfflineCheckIn{
			ParticipantID: p.ID,
			IDNumber:      idNumber,
			Timestamp:     time.Now().UTC(),
			WorkspaceID:   s.cfg.WorkspaceID,
			EventID:       s.cfg.EventID,
		}
		if err := s.queue.Append(ctx, rec); err != nil {
			return nil, fmt.Errorf("buffer check-in: %w", err)
		}
		s.queued[p.ID] = true
		res.Outcome = domain.CheckInQueued
		s.metrics.CheckIn(string(res.Outcome))
		s.updateQueueDepth(ctx)
		s.logger.InfoContext(ctx, "check-in buffered", "participant_id", p.ID)
		return res, nil
	}
	s.mu.Unlock()

	if err := s.roster.UpdateParticipantStatus(ctx, s.cfg.WorkspaceID, s.cfg.EventID, p.ID, domain.StatusAttended); err != nil {
		return nil, fmt.Errorf("check in %s: %w", idNumber, err)
	}
	res.Outcome = domain.CheckInCheckedIn
	s.metrics.CheckIn(string(res.Outcome))

	if err := s.Refresh(ctx); err != nil {
		s.logger.WarnContext(ctx, "roster refresh after check-in failed", "error", err)
		s.markAttended(p.ID)
	}
	s.mu.Lock()
	if fresh, ok := s.byID[p.ID]; ok {
		res.Participant = fresh
	}
	s.mu.Unlock()
	return res, nil
}

// markAttended records a confirmed check-in in the local roster.
func (s *checkInStation) markAttended(participantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byID[participantID]
	if !ok {
		return
	}
	cp := *p
	cp.Status = domain.StatusAttended
	s.byID[participantID] = &cp
	s.byIDNumber[domain.NormalizeIDNumber(cp.IDNumber)] = &cp
}

// Sync replays buffered check-ins in order. Records whose participant is already
// attended are acknowledged without a call. A failed record is kept for the next
// sync with its attempt count raised, and dropped once it reaches the configured
// maximum. If the station goes offline mid-replay the remaining records are kept
// untouched.
func (s *checkInStation) Sync(ctx context.Context) (*domain.SyncReport, error) {
	s.syncMu.Lock()
	defer s.syncMu.Unlock()

	if !s.conn.Online() {
		return nil, domain.ErrOffline
	}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}

	records, err := s.queue.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("read check-in queue: %w", err)
	}
	report := &domain.SyncReport{}
	if len(records) == 0 {
		s.finishSync(ctx, nil)
		return report, nil
	}

	var retained []domain.OfflineCheckIn
	done := make([]string, 0, len(records))
	for i, rec := range records {
		if !s.conn.Online() {
			retained = append(retained, records[i:]...)
			report.Retained += len(records) - i
			break
		}

		// The roster only describes this station's event. Records left behind for
		// another event are always sent; the status write is idempotent.
		own := s.servesEvent(rec)
		if own && s.alreadyAttended(rec) {
			report.Deduplicated++
			done = append(done, rec.ParticipantID)
			s.metrics.Replay("deduplicated")
			continue
		}

		err := s.roster.UpdateParticipantStatus(ctx, rec.WorkspaceID, rec.EventID, rec.ParticipantID, domain.StatusAttended)
		if err == nil {
			if own {
				s.markAttended(rec.ParticipantID)
				done = append(done, rec.ParticipantID)
			}
			report.Replayed++
			s.metrics.Replay("replayed")
			continue
		}

		rec.Attempts++
		if errors.Is(err, domain.ErrNotFound) || rec.Attempts >= s.cfg.MaxReplayAttempts {
			report.Dropped++
			if own {
				done = append(done, rec.ParticipantID)
			}
			s.metrics.Replay("dropped")
			s.logger.ErrorContext(ctx, "buffered check-in dropped",
				"participant_id", rec.ParticipantID, "id_number", rec.IDNumber,
				"attempts", rec.Attempts, "error", err)
			continue
		}
		report.Retained++
		retained = append(retained, rec)
		s.metrics.Replay("retained")
		s.logger.WarnContext(ctx, "buffered check-in replay failed",
			"participant_id", rec.ParticipantID, "id_number", rec.IDNumber,
			"attempts", rec.Attempts, "error", err)
	}

	for _, rec := range retained {
		if err := s.queue.Append(ctx, rec); err != nil {
			return nil, fmt.Errorf("requeue check-in: %w", err)
		}
	}
	if err := s.queue.Trim(ctx, len(records)); err != nil {
		return nil, fmt.Errorf("trim check-in queue: %w", err)
	}

	if err := s.Refresh(ctx); err != nil {
		s.logger.WarnContext(ctx, "roster refresh after sync failed", "error", err)
	}
	s.finishSync(ctx, done)

	s.logger.InfoContext(ctx, "check-in queue synced",
		"replayed", report.Replayed, "deduplicated", report.Deduplicated,
		"retained", report.Retained, "dropped", report.Dropped)
	return report, nil
}

// servesEvent reports whether rec was captured for this station's event.
func (s *checkInStation) servesEvent(rec domain.OfflineCheckIn) bool {
	return rec.WorkspaceID == s.cfg.WorkspaceID && rec.EventID == s.cfg.EventID
}

func (s *checkInStation) alreadyAttended(rec domain.OfflineCheckIn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byID[rec.ParticipantID]
	if !ok {
		p, ok = s.byIDNumber[domain.NormalizeIDNumber(rec.IDNumber)]
	}
	return ok && p.Status == domain.StatusAttended
}

func (s *checkInStation) finishSync(ctx context.Context, done []string) {
	s.mu.Lock()
	for _, id := range done {
		delete(s.queued, id)
	}
	s.lastSyncedAt = time.Now()
	s.mu.Unlock()
	s.updateQueueDepth(ctx)
}

func (s *checkInStation) updateQueueDepth(ctx context.Context) {
	n, err := s.queue.Len(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "read check-in queue length failed", "error", err)
		return
	}
	s.metrics.QueueDepth(n)
}

func (s *checkInStation) Status(ctx context.Context) (*domain.StationStatus, error) {
	pending, err := s.queue.Len(ctx)
	if err != nil {
		return nil, fmt.Errorf("read check-in queue: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return &domain.StationStatus{
		Online:       s.conn.Online(),
		Pending:      pending,
		RosterSize:   len(s.byID),
		LastSyncedAt: s.lastSyncedAt,
	}, nil
}

// Run syncs on startup when online and again on every offline to online
// transition until ctx is done or the connectivity signal closes.
func (s *checkInStation) Run(ctx context.Context) error {
	online := s.conn.Online()
	s.metrics.Online(online)
	if online {
		s.syncAndLog(ctx)
	} else if err := s.Refresh(ctx); err != nil {
		s.logger.WarnContext(ctx, "initial roster load failed", "error", err)
	}

	changes := s.conn.Changes()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-changes:
			if !ok {
				return nil
			}
			s.metrics.Online(now)
			s.logger.InfoContext(ctx, "connectivity changed", "online", now)
			if now && !online {
				s.syncAndLog(ctx)
			}
			online = now
		}
	}
}

func (s *checkInStation) syncAndLog(ctx context.Context) {
	if _, err := s.Sync(ctx); err != nil {
		s.logger.ErrorContext(ctx, "check-in sync failed", "error", err)
	}
}
