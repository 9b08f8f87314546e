package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"eventattendance/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListParticipants(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/workspaces/ws-1/events/ev-1/participants", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"p-1","id_number":"2023-001","first_name":"Ana","last_name":"Cruz","status":"registered"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok", srv.Client())
	list, err := c.ListParticipants(context.Background(), "ws-1", "ev-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "p-1", list[0].ID)
	assert.Equal(t, "2023-001", list[0].IDNumber)
	assert.Equal(t, domain.StatusRegistered, list[0].Status)
}

func TestClient_UpdateParticipantStatus(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/workspaces/ws-1/events/ev-1/participants/p-1/status", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"data":{"id":"p-1","status":"attended"}}`))
	}))
	defer srv.Close()

	err := New(srv.URL, "", nil).UpdateParticipantStatus(context.Background(), "ws-1", "ev-1", "p-1", domain.StatusAttended)
	require.NoError(t, err)
	assert.Equal(t, "attended", got["status"])
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"not found", http.StatusNotFound, domain.ErrNotFound},
		{"forbidden", http.StatusForbidden, domain.ErrForbidden},
		{"conflict", http.StatusConflict, domain.ErrInvalidTransition},
		{"server error", http.StatusInternalServerError, errUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":{"code":"x","message":"boom"}}`))
			}))
			defer srv.Close()

			err := New(srv.URL, "", nil).UpdateParticipantStatus(context.Background(), "ws", "ev", "p", domain.StatusAttended)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "boom")
		})
	}
}

func TestClient_Ping(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/healthz", r.URL.Path)
		if !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "", nil)
	assert.NoError(t, c.Ping(context.Background()))
	healthy.Store(false)
	assert.Error(t, c.Ping(context.Background()))

	srv.Close()
	assert.Error(t, c.Ping(context.Background()))
}
