package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventattendance/internal/delivery/http/helpers"
	"eventattendance/internal/delivery/http/middleware"
	"eventattendance/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// serve routes req through a ServeMux so path values are populated.
func serve(pattern string, handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, handler)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func asUser(req *http.Request, userID string) *http.Request {
	return req.WithContext(middleware.SetUserID(req.Context(), userID))
}

func uploadRequest(t *testing.T, target, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// decode reads the envelope and unmarshals data into out when out is non-nil.
func decode(t *testing.T, rr *httptest.ResponseRecorder, out any) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
	if out != nil {
		require.Nil(t, envelope.Error, "success response must have error nil")
		raw, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, out))
	}
	return envelope
}

type fakeAuthService struct {
	user      *domain.User
	token     string
	err       error
	lastEmail string
	lastName  string
}

func (f *fakeAuthService) SignUp(_ context.Context, email, _, name string) (*domain.User, error) {
	f.lastEmail, f.lastName = email, name
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeAuthService) Login(_ context.Context, email, _ string) (string, *domain.User, error) {
	f.lastEmail = email
	if f.err != nil {
		return "", nil, f.err
	}
	return f.token, f.user, nil
}

type fakeWorkspaceService struct {
	ws            *domain.Workspace
	list          []*domain.Workspace
	user          *domain.User
	err           error
	lastUserID    string
	lastName      string
	lastSlug      string
	lastWorkspace string
	lastEmail     string
}

func (f *fakeWorkspaceService) Create(_ context.Context, userID, name, slug string) (*domain.Workspace, error) {
	f.lastUserID, f.lastName, f.lastSlug = userID, name, slug
	return f.ws, f.err
}

func (f *fakeWorkspaceService) Get(_ context.Context, workspaceID string) (*domain.Workspace, error) {
	f.lastWorkspace = workspaceID
	return f.ws, f.err
}

func (f *fakeWorkspaceService) ListMine(_ context.Context, userID string) ([]*domain.Workspace, error) {
	f.lastUserID = userID
	return f.list, f.err
}

func (f *fakeWorkspaceService) AddMemberByEmail(_ context.Context, workspaceID, callerID, email string) (*domain.User, error) {
	f.lastWorkspace, f.lastUserID, f.lastEmail = workspaceID, callerID, email
	return f.user, f.err
}

func (f *fakeWorkspaceService) Delete(_ context.Context, workspaceID, callerID string) error {
	f.lastWorkspace, f.lastUserID = workspaceID, callerID
	return f.err
}

func (f *fakeWorkspaceService) IsMember(context.Context, string, string) (bool, error) {
	return true, f.err
}

type fakeEventService struct {
	event         *domain.Event
	list          []*domain.Event
	err           error
	lastCreate    *domain.Event
	lastWorkspace string
	lastEventID   string
	lastPatch     domain.EventPatch
	lastUserID    string
}

func (f *fakeEventService) Create(_ context.Context, event *domain.Event) error {
	f.lastCreate = event
	if f.err != nil {
		return f.err
	}
	event.ID = "ev-created"
	return nil
}

func (f *fakeEventService) Get(_ context.Context, workspaceID, eventID string) (*domain.Event, error) {
	f.lastWorkspace, f.lastEventID = workspaceID, eventID
	return f.event, f.err
}

func (f *fakeEventService) List(_ context.Context, workspaceID string) ([]*domain.Event, error) {
	f.lastWorkspace = workspaceID
	return f.list, f.err
}

func (f *fakeEventService) Update(_ context.Context, workspaceID, eventID string, patch domain.EventPatch) (*domain.Event, error) {
	f.lastWorkspace, f.lastEventID, f.lastPatch = workspaceID, eventID, patch
	return f.event, f.err
}

func (f *fakeEventService) Duplicate(_ context.Context, workspaceID, eventID, userID string) (*domain.Event, error) {
	f.lastWorkspace, f.lastEventID, f.lastUserID = workspaceID, eventID, userID
	return f.event, f.err
}

func (f *fakeEventService) Delete(_ context.Context, workspaceID, eventID string) error {
	f.lastWorkspace, f.lastEventID = workspaceID, eventID
	return f.err
}

type fakeProfileService struct {
	profile       *domain.Profile
	list          []*domain.Profile
	err           error
	lastWorkspace string
	lastID        string
	lastIDNumber  string
	lastFields    domain.PersonFields
	lastPatch     domain.ProfilePatch
	lastCascade   bool
}

func (f *fakeProfileService) ResolveByIDNumber(_ context.Context, workspaceID, idNumber string) (*domain.Profile, error) {
	f.lastWorkspace, f.lastIDNumber = workspaceID, idNumber
	return f.profile, f.err
}

func (f *fakeProfileService) Create(_ context.Context, workspaceID string, fields domain.PersonFields) (*domain.Profile, error) {
	f.lastWorkspace, f.lastFields = workspaceID, fields
	return f.profile, f.err
}

func (f *fakeProfileService) Get(_ context.Context, workspaceID, profileID string) (*domain.Profile, error) {
	f.lastWorkspace, f.lastID = workspaceID, profileID
	return f.profile, f.err
}

func (f *fakeProfileService) Update(_ context.Context, workspaceID, profileID string, patch domain.ProfilePatch) (*domain.Profile, error) {
	f.lastWorkspace, f.lastID, f.lastPatch = workspaceID, profileID, patch
	return f.profile, f.err
}

func (f *fakeProfileService) Delete(_ context.Context, workspaceID, profileID string, cascade bool) error {
	f.lastWorkspace, f.lastID, f.lastCascade = workspaceID, profileID, cascade
	return f.err
}

func (f *fakeProfileService) List(_ context.Context, workspaceID string) ([]*domain.Profile, error) {
	f.lastWorkspace = workspaceID
	return f.list, f.err
}

type fakeParticipantService struct {
	participant   *domain.Participant
	created       bool
	registration  *domain.Registration
	checkIn       *domain.CheckInResult
	list          []*domain.Participant
	affected      int64
	err           error
	lastWorkspace string
	lastEventID   string
	lastID        string
	lastFields    domain.PersonFields
	lastStatus    domain.ParticipantStatus
	lastIDNumber  string
}

func (f *fakeParticipantService) Add(_ context.Context, workspaceID, eventID, participantID string, fields domain.PersonFields, status domain.ParticipantStatus) (*domain.Participant, bool, error) {
	f.lastWorkspace, f.lastEventID, f.lastID, f.lastFields, f.lastStatus = workspaceID, eventID, participantID, fields, status
	return f.participant, f.created, f.err
}

func (f *fakeParticipantService) Register(_ context.Context, workspaceID, eventID string, fields domain.PersonFields) (*domain.Registration, error) {
	f.lastWorkspace, f.lastEventID, f.lastFields = workspaceID, eventID, fields
	return f.registration, f.err
}

func (f *fakeParticipantService) UpdateStatus(_ context.Context, workspaceID, eventID, participantID string, status domain.ParticipantStatus) (*domain.Participant, error) {
	f.lastWorkspace, f.lastEventID, f.lastID, f.lastStatus = workspaceID, eventID, participantID, status
	return f.participant, f.err
}

func (f *fakeParticipantService) CheckIn(_ context.Context, workspaceID, eventID, idNumber string) (*domain.CheckInResult, error) {
	f.lastWorkspace, f.lastEventID, f.lastIDNumber = workspaceID, eventID, idNumber
	return f.checkIn, f.err
}

func (f *fakeParticipantService) Remove(_ context.Context, workspaceID, eventID, participantID string) error {
	f.lastWorkspace, f.lastEventID, f.lastID = workspaceID, eventID, participantID
	return f.err
}

func (f *fakeParticipantService) ClearList(_ context.Context, workspaceID, eventID string) (int64, error) {
	f.lastWorkspace, f.lastEventID = workspaceID, eventID
	return f.affected, f.err
}

func (f *fakeParticipantService) ResetList(_ context.Context, workspaceID, eventID string) (int64, error) {
	f.lastWorkspace, f.lastEventID = workspaceID, eventID
	return f.affected, f.err
}

func (f *fakeParticipantService) List(_ context.Context, workspaceID, eventID string) ([]*domain.Participant, error) {
	f.lastWorkspace, f.lastEventID = workspaceID, eventID
	return f.list, f.err
}

type fakeImportService struct {
	report        *domain.ImportReport
	err           error
	lastWorkspace string
	lastEventID   string
	lastFilename  string
	lastContent   string
}

func (f *fakeImportService) ImportParticipants(_ context.Context, workspaceID, eventID, filename string, r io.Reader) (*domain.ImportReport, error) {
	f.lastEventID = eventID
	return f.record(workspaceID, filename, r)
}

func (f *fakeImportService) ImportProfiles(_ context.Context, workspaceID, filename string, r io.Reader) (*domain.ImportReport, error) {
	return f.record(workspaceID, filename, r)
}

func (f *fakeImportService) record(workspaceID, filename string, r io.Reader) (*domain.ImportReport, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f.lastWorkspace, f.lastFilename, f.lastContent = workspaceID, filename, string(b)
	return f.report, f.err
}
