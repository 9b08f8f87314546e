package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	h "eventattendance/internal/delivery/http/helpers"
)

const healthPingTimeout = 2 * time.Second

// PingFunc checks that the backing store is reachable.
type PingFunc func(ctx context.Context) error

// HealthStatus is the body of GET /healthz.
type HealthStatus struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

type HealthController struct {
	Logger *slog.Logger
	Ping   PingFunc
}

func NewHealthController(logger *slog.Logger, ping PingFunc) *HealthController {
	return &HealthController{Logger: logger, Ping: ping}
}

// Healthz godoc
// @Summary Health check
// @Description Reports whether the API and its store are reachable.
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse "data.status is ok"
// @Failure 503 {object} helpers.APIResponse "data.store is unreachable"
// @Router /healthz [get]
func (c *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	if c.Ping == nil {
		h.WriteJSONSuccess(w, http.StatusOK, HealthStatus{Status: "ok", Store: "unknown"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()
	if err := c.Ping(ctx); err != nil {
		c.Logger.WarnContext(r.Context(), "store ping failed", "err", err)
		h.WriteJSONSuccess(w, http.StatusServiceUnavailable, HealthStatus{Status: "degraded", Store: "unreachable"})
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, HealthStatus{Status: "ok", Store: "ok"})
}
