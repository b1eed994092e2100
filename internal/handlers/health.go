package handlers

import (
	"context"
	"net/http"
	"time"

	"toyland-backend/internal/logging"
	"toyland-backend/internal/respond"
)

const healthCheckTimeout = 2 * time.Second

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// --- GET / ---

func (h *HealthHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Welcome to Toy Land BD"))
}

// --- GET /health ---

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("health check: database ping failed")
		respond.JSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "degraded",
			"service": "toyland-backend",
		})
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "toyland-backend",
	})
}
