package api

import (
	"log/slog"
	"net/http"

	"github.com/davmoren/tunebase/internal/api/shared"
	"github.com/davmoren/tunebase/internal/platform/logger"
	"github.com/davmoren/tunebase/internal/store"
)

// HealthResponse represents the health probe response body.
type HealthResponse struct {
	Status string `json:"status"`
	Users  int    `json:"users,omitempty"`
	Songs  int    `json:"songs,omitempty"`
}

// HealthHandler handles liveness and readiness probes. The readiness probe
// exercises the store with cheap counts so a broken database connection
// shows up here before it shows up in traffic.
type HealthHandler struct {
	userStore store.UserStore
	songStore store.SongStore
	logger    *slog.Logger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(
	userStore store.UserStore,
	songStore store.SongStore,
	logger *slog.Logger,
) *HealthHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for HealthHandler")
	}

	return &HealthHandler{
		userStore: userStore,
		songStore: songStore,
		logger:    logger.With(slog.String("component", "health_handler")),
	}
}

// Liveness handles GET /health requests.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readiness handles GET /health/ready requests.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	users, err := h.userStore.Count(r.Context())
	if err != nil {
		log.Error("readiness probe failed on user count", slog.String("error", err.Error()))
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}

	songs, err := h.songStore.Count(r.Context())
	if err != nil {
		log.Error("readiness probe failed on song count", slog.String("error", err.Error()))
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status: "ok",
		Users:  users,
		Songs:  songs,
	})
}
