package services

import (
	"context"
	"testing"
	"time"

	"eventattendance/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type participantFixture struct {
	events       *mockEventRepository
	profiles     *mockProfileRepository
	participants *mockParticipantRepository
	email        *mockEmailService
	svc          domain.ParticipantService
	profileSvc   domain.ProfileService
}

func newParticipantFixture(policy domain.StatusPolicy) *participantFixture {
	date := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
	f := &participantFixture{
		events:       newMockEventRepository(&domain.Event{ID: "ev-1", WorkspaceID: "ws-1", Name: "Orientation", Date: &date}),
		profiles:     newMockProfileRepository(),
		participants: newMockParticipantRepository(),
		email:        &mockEmailService{},
	}
	f.svc = NewParticipantService(f.events, f.profiles, f.participants, policy, f.email, discardLogger(), nil, time.Second)
	f.profileSvc = NewProfileService(f.profiles, f.participants, time.Second)
	return f
}

func (f *participantFixture) addProfile(t *testing.T, idNumber string) *domain.Profile {
	t.Helper()
	p, err := f.profileSvc.Create(context.Background(), "ws-1", person(idNumber, "First"+idNumber, "Last"))
	require.NoError(t, err)
	return p
}

func TestParticipantService_Add_IdentityBinding(t *testing.T) {
	f := newParticipantFixture(nil)
	ctx := context.Background()
	profile := f.addProfile(t, "2023-001")

	p, created, err := f.svc.Add(ctx, "ws-1", "ev-1", profile.ID, domain.PersonFields{}, "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, profile.ID, p.ID)
	assert.Equal(t, domain.StatusRegistered, p.Status)
	assert.Equal(t, "2023-001", p.IDNumber)

	resolved, err := f.profileSvc.ResolveByIDNumber(ctx, "ws-1", "2023-001")
	require.NoError(t, err)

	again, created, err := f.svc.Add(ctx, "ws-1", "ev-1", resolved.ID, resolved.PersonFields, domain.StatusRegistered)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, profile.ID, again.ID)

	list, err := f.svc.List(ctx, "ws-1", "ev-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, profile.ID, list[0].ID)
}

func TestParticipantService_Add_Errors(t *testing.T) {
	f := newParticipantFixture(nil)
	ctx := context.Background()
	profile := f.addProfile(t, "A")

	_, _, err := f.svc.Add(ctx, "ws-1", "ev-1", "no-such-profile", domain.PersonFields{}, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, _, err = f.svc.Add(ctx, "ws-1", "ev-404", profile.ID, domain.PersonFields{}, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, _, err = f.svc.Add(ctx, "ws-1", "ev-1", profile.ID, domain.PersonFields{}, "checked")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = f.svc.Add(ctx, "ws-1", "ev-1", profile.ID, person("B", "x", "y"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParticipantService_Register(t *testing.T) {
	f := newParticipantFixture(nil)
	ctx := context.Background()
	fields := person(" 2023-050 ", "Cy", "Diaz")
	fields.Email = "cy@example.com"

	reg, err := f.svc.Register(ctx, "ws-1", "ev-1", fields)
	require.NoError(t, err)
	assert.True(t, reg.ProfileCreated)
	assert.False(t, reg.AlreadyRegistered)
	assert.Equal(t, reg.Profile.ID, reg.Participant.ID)
	assert.Equal(t, "2023-050", reg.Participant.IDNumber)
	require.Len(t, f.email.sent, 1)
	assert.Equal(t, "Orientation", f.email.sent[0].EventName)
	assert.Equal(t, "March 3, 2026", f.email.sent[0].EventDate)

	reg, err = f.svc.Register(ctx, "ws-1", "ev-1", fields)
	require.NoError(t, err)
	assert.False(t, reg.ProfileCreated)
	assert.True(t, reg.AlreadyRegistered)
	assert.Len(t, f.email.sent, 1, "no second email for an existing registration")
	assert.Equal(t, 1, f.profiles.count())
}

func TestParticipantService_Register_ReusesProfile(t *testing.T) {
	f := newParticipantFixture(nil)
	profile := f.addProfile(t, "2023-001")

	reg, err := f.svc.Register(context.Background(), "ws-1", "ev-1", person("2023-001", "Ana", "Cruz"))
	require.NoError(t, err)
	assert.False(t, reg.ProfileCreated)
	assert.Equal(t, profile.ID, reg.Participant.ID)
}

func TestParticipantService_Register_EmailFailureIsNotFatal(t *testing.T) {
	f := newParticipantFixture(nil)
	f.email.err = errBoom
	fields := person("1", "A", "B")
	fields.Email = "a@b.co"

	reg, err := f.svc.Register(context.Background(), "ws-1", "ev-1", fields)
	require.NoError(t, err)
	assert.NotNil(t, reg.Participant)
}

func TestParticipantService_Register_Validation(t *testing.T) {
	f := newParticipantFixture(nil)
	_, err := f.svc.Register(context.Background(), "ws-1", "ev-1", person("1", "", "B"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.svc.Register(context.Background(), "ws-1", "ev-404", person("1", "A", "B"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, f.profiles.count())
}

func TestParticipantService_UpdateStatus(t *testing.T) {
	f := newParticipantFixture(domain.StrictStatusPolicy())
	ctx := context.Background()
	profile := f.addProfile(t, "A")
	_, _, err := f.svc.Add(ctx, "ws-1", "ev-1", profile.ID, domain.PersonFields{}, "")
	require.NoError(t, err)

	p, err := f.svc.UpdateStatus(ctx, "ws-1", "ev-1", profile.ID, domain.StatusAttended)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAttended, p.Status)

	p, err = f.svc.UpdateStatus(ctx, "ws-1", "ev-1", profile.ID, domain.StatusAttended)
	require.NoError(t, err, "attended twice is a no-op")
	assert.Equal(t, domain.StatusAttended, p.Status)

	_, err = f.svc.UpdateStatus(ctx, "ws-1", "ev-1", profile.ID, domain.StatusNoShow)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.svc.UpdateStatus(ctx, "ws-1", "ev-1", profile.ID, "late")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.svc.UpdateStatus(ctx, "ws-1", "ev-1", "missing", domain.StatusAttended)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParticipantService_UpdateStatus_Permissive(t *testing.T) {
	f := newParticipantFixture(domain.PermissiveStatusPolicy())
	ctx := context.Background()
	profile := f.addProfile(t, "A")
	_, _, err := f.svc.Add(ctx, "ws-1", "ev-1", profile.ID, domain.PersonFields{}, domain.StatusAttended)
	require.NoError(t, err)

	p, err := f.svc.UpdateStatus(ctx, "ws-1", "ev-1", profile.ID, domain.StatusNoShow)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNoShow, p.Status)
}

func TestParticipantService_UpdateStatus_ConcurrentWriter(t *testing.T) {
	f := newParticipantFixture(domain.StrictStatusPolicy())
	ctx := context.Background()
	profile := f.addProfile(t, "A")
	_, _, err := f.svc.Add(ctx, "ws-1", "ev-1", profile.ID, domain.PersonFields{}, "")
	require.NoError(t, err)

	// Another station checks the participant in between our read and write.
	f.participants.racer = func(p *domain.Participant) { p.Status = domain.StatusAttended }

	_, err = f.svc.UpdateStatus(ctx, "ws-1", "ev-1", profile.ID, domain.StatusNoShow)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	stored, err := f.participants.Get(ctx, "ws-1", "ev-1", profile.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAttended, stored.Status)
}

func TestParticipantService_CheckIn(t *testing.T) {
	f := newParticipantFixture(nil)
	ctx := context.Background()
	profile := f.addProfile(t, "2023-001")
	_, _, err := f.svc.Add(ctx, "ws-1", "ev-1", profile.ID, domain.PersonFields{}, "")
	require.NoError(t, err)

	res, err := f.svc.CheckIn(ctx, "ws-1", "ev-1", " 2023-001 ")
	require.NoError(t, err)
	assert.Equal(t, domain.CheckInCheckedIn, res.Outcome)
	assert.Equal(t, domain.StatusAttended, res.Participant.Status)

	res, err = f.svc.CheckIn(ctx, "ws-1", "ev-1", "2023-001")
	require.NoError(t, err)
	assert.Equal(t, domain.CheckInAlreadyCheckedIn, res.Outcome)

	res, err = f.svc.CheckIn(ctx, "ws-1", "ev-1", "9999")
	require.NoError(t, err)
	assert.Equal(t, domain.CheckInNotFound, res.Outcome)
	assert.Nil(t, res.Participant)

	_, err = f.svc.CheckIn(ctx, "ws-1", "ev-1", "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParticipantService_ClearAndReset(t *testing.T) {
	f := newParticipantFixture(nil)
	ctx := context.Background()
	for _, idn := range []string{"A", "B", "C"} {
		profile := f.addProfile(t, idn)
		_, _, err := f.svc.Add(ctx, "ws-1", "ev-1", profile.ID, domain.PersonFields{}, domain.StatusAttended)
		require.NoError(t, err)
	}

	n, err := f.svc.ResetList(ctx, "ws-1", "ev-1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	list, err := f.svc.List(ctx, "ws-1", "ev-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	for _, p := range list {
		assert.Equal(t, domain.StatusRegistered, p.Status)
	}

	n, err = f.svc.ClearList(ctx, "ws-1", "ev-1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	list, err = f.svc.List(ctx, "ws-1", "ev-1")
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, 3, f.profiles.count(), "profiles outlive the event list")

	_, err = f.svc.ClearList(ctx, "ws-1", "ev-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParticipantService_Remove(t *testing.T) {
	f := newParticipantFixture(nil)
	ctx := context.Background()
	profile := f.addProfile(t, "A")
	_, _, err := f.svc.Add(ctx, "ws-1", "ev-1", profile.ID, domain.PersonFields{}, "")
	require.NoError(t, err)

	require.NoError(t, f.svc.Remove(ctx, "ws-1", "ev-1", profile.ID))
	assert.ErrorIs(t, f.svc.Remove(ctx, "ws-1", "ev-1", profile.ID), domain.ErrNotFound)
}
