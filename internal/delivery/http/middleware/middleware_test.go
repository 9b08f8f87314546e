package middleware

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	l := NewRateLimiter(2, 2)
	l.now = func() time.Time { return now }
	handler := l.Wrap(okHandler)

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/public/x", nil)
		req.RemoteAddr = ip + ":5555"
		rr := httptest.NewRecorder()
		handler(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2"), "buckets are per client")

	now = now.Add(30 * time.Second)
	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
}

func TestRateLimiter_ignoresForwardedForByDefault(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	l := NewRateLimiter(2, 2)
	l.now = func() time.Time { return now }
	handler := l.Wrap(okHandler)

	allowed := 0
	for i := range 100 {
		req := httptest.NewRequest(http.MethodGet, "/public/x", nil)
		req.RemoteAddr = "198.51.100.4:5555"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.1.%d.%d", i/256, i%256))
		rr := httptest.NewRecorder()
		handler(rr, req)
		if rr.Code == http.StatusOK {
			allowed++
		}
	}
	assert.Equal(t, 2, allowed, "rotating the header does not mint new buckets")
	assert.Equal(t, 1, l.size())
}

func TestRateLimiter_prunesRefilledBuckets(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	l := NewRateLimiter(2, 2)
	l.now = func() time.Time { return now }

	for i := range 50 {
		require.True(t, l.allow(fmt.Sprintf("10.0.0.%d", i)))
	}
	assert.Equal(t, 50, l.size())

	now = now.Add(30 * time.Second)
	require.True(t, l.allow("10.0.0.0"))
	require.True(t, l.allow("10.0.0.0"))
	assert.False(t, l.allow("10.0.0.0"))

	now = now.Add(sweepEvery)
	require.True(t, l.allow("10.0.0.99"))
	assert.Equal(t, 1, l.size(), "only the new client remains")
	assert.True(t, l.allow("10.0.0.0"), "pruned clients start with a full bucket")
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name      string
		trust     bool
		forwarded []string
		want      string
	}{
		{"remote address", false, nil, "192.0.2.1"},
		{"spoofed header ignored", false, []string{"203.0.113.7"}, "192.0.2.1"},
		{"trusted proxy hop", true, []string{"203.0.113.7, 10.0.0.1"}, "10.0.0.1"},
		{"last header wins", true, []string{"1.1.1.1", "203.0.113.7"}, "203.0.113.7"},
		{"trusted without header", true, nil, "192.0.2.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewRateLimiter(1, 1)
			l.TrustForwardedFor = tt.trust
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.0.2.1:1234"
			for _, v := range tt.forwarded {
				req.Header.Add("X-Forwarded-For", v)
			}
			assert.Equal(t, tt.want, l.clientIP(req))
		})
	}
}

type fakeMembers struct {
	member bool
	err    error
	gotWS  string
	gotUID string
}

func (f *fakeMembers) IsMember(_ context.Context, workspaceID, userID string) (bool, error) {
	f.gotWS, f.gotUID = workspaceID, userID
	return f.member, f.err
}

func TestRequireWorkspaceMember(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		members    *fakeMembers
		wantStatus int
	}{
		{"member", "user-1", &fakeMembers{member: true}, http.StatusOK},
		{"not a member", "user-1", &fakeMembers{}, http.StatusForbidden},
		{"lookup fails", "user-1", &fakeMembers{err: errors.New("db down")}, http.StatusInternalServerError},
		{"unauthenticated", "", &fakeMembers{member: true}, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("GET /workspaces/{workspaceID}/events", RequireWorkspaceMember(tt.members, discard)(okHandler))

			req := httptest.NewRequest(http.MethodGet, "/workspaces/ws-9/events", nil)
			if tt.userID != "" {
				req = req.WithContext(SetUserID(req.Context(), tt.userID))
			}
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.userID != "" {
				assert.Equal(t, "ws-9", tt.members.gotWS)
				assert.Equal(t, tt.userID, tt.members.gotUID)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	handler := CORS([]string{"https://app.example.com/"}, http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodOptions, "/events", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "https://app.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, corsAllowMethods, rr.Header().Get("Access-Control-Allow-Methods"))

	req = httptest.NewRequest(http.MethodGet, "/events", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))

	anyOrigin := CORS([]string{"*"}, http.HandlerFunc(okHandler))
	req = httptest.NewRequest(http.MethodGet, "/events", nil)
	req.Header.Set("Origin", "http://kiosk.local")
	rr = httptest.NewRecorder()
	anyOrigin.ServeHTTP(rr, req)
	assert.Equal(t, "http://kiosk.local", rr.Header().Get("Access-Control-Allow-Origin"))
}
