package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventattendance/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }
func (fakeHasher) Hash(salt, password string) (string, error) { return salt + ":" + password, nil }
func (fakeHasher) Compare(hash, salt, password string) error {
	if hash != salt+":"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeIssuer struct {
	expiry time.Duration
}

func (f *fakeIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	f.expiry = expiry
	return "token-" + userID, nil
}

func TestAuthService_SignUp(t *testing.T) {
	users := newMockUserRepository()
	svc := NewAuthService(users, fakeHasher{}, &fakeIssuer{}, time.Hour)

	u, err := svc.SignUp(context.Background(), "  Admin@Example.com ", "password123", " Admin ")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "admin@example.com", u.Email)
	assert.Equal(t, "Admin", u.Name)
	assert.Equal(t, "salt:password123", u.PasswordHash)

	_, err = svc.SignUp(context.Background(), "admin@example.com", "password123", "Again")
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestAuthService_SignUp_validation(t *testing.T) {
	svc := NewAuthService(newMockUserRepository(), fakeHasher{}, &fakeIssuer{}, time.Hour)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"bad email", "not-an-email", "password123"},
		{"short password", "a@b.co", "short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignUp(context.Background(), tt.email, tt.password, "x")
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	users := newMockUserRepository()
	issuer := &fakeIssuer{}
	svc := NewAuthService(users, fakeHasher{}, issuer, 2*time.Hour)
	u, err := svc.SignUp(context.Background(), "a@b.co", "password123", "A")
	require.NoError(t, err)

	token, got, err := svc.Login(context.Background(), "A@B.co", "password123")
	require.NoError(t, err)
	assert.Equal(t, "token-"+u.ID, token)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, 2*time.Hour, issuer.expiry)

	_, _, err = svc.Login(context.Background(), "a@b.co", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody@b.co", "password123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
