package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthController_Healthz(t *testing.T) {
	tests := []struct {
		name       string
		ping       PingFunc
		wantStatus int
		wantStore  string
	}{
		{"store reachable", func(context.Context) error { return nil }, http.StatusOK, "ok"},
		{"store down", func(context.Context) error { return errors.New("dial tcp: refused") }, http.StatusServiceUnavailable, "unreachable"},
		{"no pinger", nil, http.StatusOK, "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewHealthController(testLogger, tt.ping)
			rr := httptest.NewRecorder()
			ctrl.Healthz(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			var status HealthStatus
			decode(t, rr, &status)
			assert.Equal(t, tt.wantStore, status.Store)
		})
	}
}
