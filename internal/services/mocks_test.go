package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"eventattendance/internal/domain"

	"github.com/google/uuid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockUserRepository implements domain.UserRepository for tests.
type mockUserRepository struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: map[string]*domain.User{}}
}

func (m *mockUserRepository) Create(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
	}
	u.ID = uuid.NewString()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *mockUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// mockWorkspaceRepository implements domain.WorkspaceRepository for tests.
type mockWorkspaceRepository struct {
	mu         sync.Mutex
	workspaces map[string]*domain.Workspace
}

func newMockWorkspaceRepository() *mockWorkspaceRepository {
	return &mockWorkspaceRepository{workspaces: map[string]*domain.Workspace{}}
}

func (m *mockWorkspaceRepository) Create(_ context.Context, ws *domain.Workspace) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.workspaces {
		if existing.Slug == ws.Slug {
			return domain.ErrDuplicateSlug
		}
	}
	ws.ID = uuid.NewString()
	ws.Members = []string{ws.CreatedBy}
	cp := *ws
	cp.Members = append([]string(nil), ws.Members...)
	m.workspaces[ws.ID] = &cp
	return nil
}

func (m *mockWorkspaceRepository) GetByID(_ context.Context, id string) (*domain.Workspace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ws, ok := m.workspaces[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *ws
	cp.Members = append([]string(nil), ws.Members...)
	return &cp, nil
}

func (m *mockWorkspaceRepository) ListByMember(_ context.Context, userID string) ([]*domain.Workspace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Workspace
	for _, ws := range m.workspaces {
		for _, member := range ws.Members {
			if member == userID {
				cp := *ws
				out = append(out, &cp)
			}
		}
	}
	return out, nil
}

func (m *mockWorkspaceRepository) AddMember(_ context.Context, workspaceID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ws, ok := m.workspaces[workspaceID]
	if !ok {
		return domain.ErrNotFound
	}
	for _, member := range ws.Members {
		if member == userID {
			return domain.ErrAlreadyMember
		}
	}
	ws.Members = append(ws.Members, userID)
	return nil
}

func (m *mockWorkspaceRepository) IsMember(_ context.Context, workspaceID, userID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ws, ok := m.workspaces[workspaceID]
	if !ok {
		return false, nil
	}
	for _, member := range ws.Members {
		if member == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockWorkspaceRepository) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.workspaces[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.workspaces, id)
	return nil
}

// mockEventRepository implements domain.EventRepository for tests.
type mockEventRepository struct {
	mu     sync.Mutex
	events map[string]*domain.Event
	err    error
}

func newMockEventRepository(events ...*domain.Event) *mockEventRepository {
	m := &mockEventRepository{events: map[string]*domain.Event{}}
	for _, e := range events {
		m.events[e.ID] = e
	}
	return m
}

func (m *mockEventRepository) Create(_ context.Context, e *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	e.ID = uuid.NewString()
	cp := *e
	m.events[e.ID] = &cp
	return nil
}

func (m *mockEventRepository) GetByID(_ context.Context, workspaceID, id string) (*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	e, ok := m.events[id]
	if !ok || e.WorkspaceID != workspaceID {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *mockEventRepository) ListByWorkspace(_ context.Context, workspaceID string) ([]*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.Event
	for _, e := range m.events {
		if e.WorkspaceID == workspaceID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockEventRepository) Update(_ context.Context, e *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	m.events[e.ID] = &cp
	return nil
}

func (m *mockEventRepository) Delete(_ context.Context, workspaceID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok || e.WorkspaceID != workspaceID {
		return domain.ErrNotFound
	}
	delete(m.events, id)
	return nil
}

// mockProfileRepository implements domain.ProfileRepository for tests with the
// same uniqueness rules as the database: one profile per ID and per
// (workspace, ID number).
type mockProfileRepository struct {
	mu        sync.Mutex
	profiles  map[string]*domain.Profile
	creates   int
	createErr error
	inUse     bool
}

func newMockProfileRepository() *mockProfileRepository {
	return &mockProfileRepository{profiles: map[string]*domain.Profile{}}
}

func (m *mockProfileRepository) CreateIfAbsent(_ context.Context, p *domain.Profile) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return false, m.createErr
	}
	if _, ok := m.profiles[p.ID]; ok {
		return false, nil
	}
	for _, existing := range m.profiles {
		if existing.WorkspaceID == p.WorkspaceID && existing.IDNumber == p.IDNumber {
			return false, nil
		}
	}
	m.creates++
	cp := *p
	m.profiles[p.ID] = &cp
	return true, nil
}

func (m *mockProfileRepository) GetByID(_ context.Context, workspaceID, id string) (*domain.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	if !ok || p.WorkspaceID != workspaceID {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockProfileRepository) GetByIDNumber(_ context.Context, workspaceID, idNumber string) (*domain.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.profiles {
		if p.WorkspaceID == workspaceID && p.IDNumber == idNumber {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockProfileRepository) ListByWorkspace(_ context.Context, workspaceID string) ([]*domain.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Profile
	for _, p := range m.profiles {
		if p.WorkspaceID == workspaceID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IDNumber < out[j].IDNumber })
	return out, nil
}

func (m *mockProfileRepository) Update(_ context.Context, p *domain.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[p.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range m.profiles {
		if id != p.ID && existing.WorkspaceID == p.WorkspaceID && existing.IDNumber == p.IDNumber {
			return domain.ErrDuplicateIDNumber
		}
	}
	cp := *p
	m.profiles[p.ID] = &cp
	return nil
}

func (m *mockProfileRepository) Delete(_ context.Context, workspaceID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inUse {
		return domain.ErrProfileInUse
	}
	p, ok := m.profiles[id]
	if !ok || p.WorkspaceID != workspaceID {
		return domain.ErrNotFound
	}
	delete(m.profiles, id)
	return nil
}

func (m *mockProfileRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.profiles)
}

// mockParticipantRepository implements domain.ParticipantRepository for tests,
// keyed by (event, participant ID).
type mockParticipantRepository struct {
	mu           sync.Mutex
	participants map[string]*domain.Participant
	createErr    error
	// racer runs before the next status write, simulating a concurrent writer.
	racer func(p *domain.Participant)
}

func newMockParticipantRepository() *mockParticipantRepository {
	return &mockParticipantRepository{participants: map[string]*domain.Participant{}}
}

func participantKey(eventID, id string) string { return eventID + "/" + id }

func (m *mockParticipantRepository) CreateIfAbsent(_ context.Context, p *domain.Participant) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return false, m.createErr
	}
	key := participantKey(p.EventID, p.ID)
	if _, ok := m.participants[key]; ok {
		return false, nil
	}
	cp := *p
	m.participants[key] = &cp
	return true, nil
}

func (m *mockParticipantRepository) Get(_ context.Context, workspaceID, eventID, id string) (*domain.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.participants[participantKey(eventID, id)]
	if !ok || p.WorkspaceID != workspaceID {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockParticipantRepository) GetByIDNumber(_ context.Context, workspaceID, eventID, idNumber string) (*domain.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.participants {
		if p.WorkspaceID == workspaceID && p.EventID == eventID && p.IDNumber == idNumber {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockParticipantRepository) ListByEvent(_ context.Context, workspaceID, eventID string) ([]*domain.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Participant
	for _, p := range m.participants {
		if p.WorkspaceID == workspaceID && p.EventID == eventID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IDNumber < out[j].IDNumber })
	return out, nil
}

func (m *mockParticipantRepository) UpdateStatus(_ context.Context, workspaceID, eventID, id string, expected, status domain.ParticipantStatus) (*domain.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.participants[participantKey(eventID, id)]
	if !ok || p.WorkspaceID != workspaceID {
		return nil, domain.ErrNotFound
	}
	if m.racer != nil {
		racer := m.racer
		m.racer = nil
		racer(p)
	}
	if p.Status != expected {
		return nil, domain.ErrConcurrentUpdate
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	cp := *p
	return &cp, nil
}

func (m *mockParticipantRepository) Delete(_ context.Context, workspaceID, eventID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := participantKey(eventID, id)
	p, ok := m.participants[key]
	if !ok || p.WorkspaceID != workspaceID {
		return domain.ErrNotFound
	}
	delete(m.participants, key)
	return nil
}

func (m *mockParticipantRepository) DeleteByEvent(_ context.Context, workspaceID, eventID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for key, p := range m.participants {
		if p.WorkspaceID == workspaceID && p.EventID == eventID {
			delete(m.participants, key)
			n++
		}
	}
	return n, nil
}

func (m *mockParticipantRepository) ResetStatuses(_ context.Context, workspaceID, eventID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, p := range m.participants {
		if p.WorkspaceID == workspaceID && p.EventID == eventID {
			p.Status = domain.StatusRegistered
			n++
		}
	}
	return n, nil
}

func (m *mockParticipantRepository) CountByProfile(_ context.Context, workspaceID, profileID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, p := range m.participants {
		if p.WorkspaceID == workspaceID && p.ID == profileID {
			n++
		}
	}
	return n, nil
}

func (m *mockParticipantRepository) DeleteByProfile(_ context.Context, workspaceID, profileID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for key, p := range m.participants {
		if p.WorkspaceID == workspaceID && p.ID == profileID {
			delete(m.participants, key)
			n++
		}
	}
	return n, nil
}

// mockEmailService records confirmation emails.
type mockEmailService struct {
	mu   sync.Mutex
	sent []*domain.RegistrationEmailData
	err  error
}

func (m *mockEmailService) SendRegistrationConfirmation(_ context.Context, data *domain.RegistrationEmailData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, data)
	return nil
}

var errBoom = errors.New("boom")
