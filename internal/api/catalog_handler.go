package api

import (
	"log/slog"
	"net/http"

	"github.com/davmoren/tunebase/internal/api/shared"
	"github.com/davmoren/tunebase/internal/platform/logger"
	"github.com/davmoren/tunebase/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CatalogHandler handles song catalog HTTP requests
type CatalogHandler struct {
	catalogService service.CatalogService
	logger         *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService service.CatalogService, logger *slog.Logger) *CatalogHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CatalogHandler")
	}

	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger.With(slog.String("component", "catalog_handler")),
	}
}

// ListSongs handles GET /songs requests.
// When artist or title query parameters are present it performs a filtered
// search; otherwise it returns the whole catalog.
func (h *CatalogHandler) ListSongs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	artist := r.URL.Query().Get("artist")
	title := r.URL.Query().Get("title")

	var (
		songs []SongResponse
		err   error
	)
	if artist != "" || title != "" {
		log.Debug("searching songs",
			slog.String("artist_filter", artist),
			slog.String("title_filter", title))
		result, searchErr := h.catalogService.SearchSongs(r.Context(), artist, title)
		err = searchErr
		if err == nil {
			songs = songsToResponse(result)
		}
	} else {
		result, listErr := h.catalogService.ListSongs(r.Context())
		err = listErr
		if err == nil {
			songs = songsToResponse(result)
		}
	}

	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to list songs"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, songs)
}

// GetSong handles GET /songs/{id} requests.
func (h *CatalogHandler) GetSong(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Debug("invalid song ID in request path",
			slog.String("raw_id", chi.URLParam(r, "id")))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid song ID")
		return
	}

	song, err := h.catalogService.GetSong(r.Context(), id)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to get song"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, songToResponse(song))
}
