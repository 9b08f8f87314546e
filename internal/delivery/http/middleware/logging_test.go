package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		handler   http.HandlerFunc
		wantLevel string
		status    float64
		bytes     float64
	}{
		{
			name:   "implicit ok",
			method: http.MethodGet,
			path:   "/public/workspaces/ws-1/events/ev-1",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"data":{}}`))
			},
			wantLevel: "INFO", status: 200, bytes: 11,
		},
		{
			name:   "no content",
			method: http.MethodDelete,
			path:   "/workspaces/ws-1/events/ev-1/participants/p-1",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			wantLevel: "INFO", status: 204, bytes: 0,
		},
		{
			name:   "first status wins",
			method: http.MethodPost,
			path:   "/workspaces/ws-1/profiles/import",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("upstream"))
			},
			wantLevel: "WARN", status: 502, bytes: 8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			rr := httptest.NewRecorder()

			LoggingMiddleware(logger, tt.handler).ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, "request", line["msg"])
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, tt.method, line["method"])
			assert.Equal(t, tt.path, line["path"])
			assert.Equal(t, tt.status, line["status"])
			assert.Equal(t, tt.bytes, line["bytes"])
			assert.Contains(t, line, "duration_ms")
		})
	}
}
