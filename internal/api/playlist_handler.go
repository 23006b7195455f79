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

// CreatePlaylistRequest represents the request body for creating a playlist.
type CreatePlaylistRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Name   string `json:"name"    validate:"required,max=50"`
}

// AddSongRequest represents the request body for adding a song to a playlist.
type AddSongRequest struct {
	SongID string `json:"song_id" validate:"required,uuid"`
}

// PlaylistHandler handles playlist-related HTTP requests
type PlaylistHandler struct {
	playlistService service.PlaylistService
	logger          *slog.Logger
}

// NewPlaylistHandler creates a new PlaylistHandler
func NewPlaylistHandler(playlistService service.PlaylistService, logger *slog.Logger) *PlaylistHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PlaylistHandler")
	}

	return &PlaylistHandler{
		playlistService: playlistService,
		logger:          logger.With(slog.String("component", "playlist_handler")),
	}
}

// CreatePlaylist handles POST /playlists requests.
func (h *PlaylistHandler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreatePlaylistRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("failed to decode create playlist request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user ID")
		return
	}

	playlist, err := h.playlistService.CreatePlaylist(r.Context(), userID, req.Name)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to create playlist"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, playlistToResponse(&service.PlaylistWithSongs{
		Playlist: *playlist,
	}))
}

// GetUserPlaylists handles GET /users/{id}/playlists requests.
func (h *PlaylistHandler) GetUserPlaylists(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user ID")
		return
	}

	playlists, err := h.playlistService.GetUserPlaylists(r.Context(), userID)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to list playlists"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	response := make([]PlaylistResponse, 0, len(playlists))
	for _, playlist := range playlists {
		response = append(response, playlistToResponse(playlist))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetPlaylistDetail handles GET /playlists/{id} requests.
func (h *PlaylistHandler) GetPlaylistDetail(w http.ResponseWriter, r *http.Request) {
	playlistID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid playlist ID")
		return
	}

	detail, err := h.playlistService.GetPlaylistDetail(r.Context(), playlistID)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to get playlist"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, playlistDetailToResponse(detail))
}

// AddSong handles POST /playlists/{id}/songs requests.
func (h *PlaylistHandler) AddSong(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	playlistID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid playlist ID")
		return
	}

	var req AddSongRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("failed to decode add song request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	songID, err := uuid.Parse(req.SongID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid song ID")
		return
	}

	if _, err := h.playlistService.AddSong(r.Context(), playlistID, songID); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to add song to playlist"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveSong handles DELETE /playlists/{id}/songs/{songID} requests.
func (h *PlaylistHandler) RemoveSong(w http.ResponseWriter, r *http.Request) {
	playlistID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid playlist ID")
		return
	}

	songID, err := uuid.Parse(chi.URLParam(r, "songID"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid song ID")
		return
	}

	if err := h.playlistService.RemoveSong(r.Context(), playlistID, songID); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to remove song from playlist"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
