package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davmoren/tunebase/internal/domain"
	"github.com/davmoren/tunebase/internal/service"
	"github.com/davmoren/tunebase/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func catalogTestRouter(svc service.CatalogService) http.Handler {
	h := NewCatalogHandler(svc, slog.Default())

	r := chi.NewRouter()
	r.Get("/songs", h.ListSongs)
	r.Get("/songs/{id}", h.GetSong)
	return r
}

func TestListSongsEndpoint(t *testing.T) {
	t.Parallel()

	svc := &mockCatalogService{}
	songs := []*domain.Song{
		{ID: uuid.New(), Title: "Airbag", Artist: "Radiohead", DurationSeconds: 284},
		{ID: uuid.New(), Title: "Army of Me", Artist: "Björk", DurationSeconds: 231},
	}
	svc.On("ListSongs", mock.Anything).Return(songs, nil)

	req := httptest.NewRequest(http.MethodGet, "/songs", nil)
	rec := httptest.NewRecorder()

	catalogTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []SongResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "04:44", resp[0].Duration)
	svc.AssertNotCalled(t, "SearchSongs", mock.Anything, mock.Anything, mock.Anything)
}

func TestListSongsWithFiltersUsesSearch(t *testing.T) {
	t.Parallel()

	svc := &mockCatalogService{}
	matches := []*domain.Song{
		{ID: uuid.New(), Title: "Airbag", Artist: "Radiohead", DurationSeconds: 284},
	}
	svc.On("SearchSongs", mock.Anything, "radio", "air").Return(matches, nil)

	req := httptest.NewRequest(http.MethodGet, "/songs?artist=radio&title=air", nil)
	rec := httptest.NewRecorder()

	catalogTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []SongResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	svc.AssertNotCalled(t, "ListSongs", mock.Anything)
}

func TestListSongsEmptyResult(t *testing.T) {
	t.Parallel()

	svc := &mockCatalogService{}
	svc.On("SearchSongs", mock.Anything, "nobody", "").Return([]*domain.Song{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/songs?artist=nobody", nil)
	rec := httptest.NewRecorder()

	catalogTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetSongEndpoint(t *testing.T) {
	t.Parallel()

	svc := &mockCatalogService{}
	song := &domain.Song{ID: uuid.New(), Title: "Airbag", Artist: "Radiohead", DurationSeconds: 284}
	svc.On("GetSong", mock.Anything, song.ID).Return(song, nil)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/songs/%s", song.ID), nil)
	rec := httptest.NewRecorder()

	catalogTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SongResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, song.ID.String(), resp.ID)
}

func TestGetSongNotFound(t *testing.T) {
	t.Parallel()

	svc := &mockCatalogService{}
	id := uuid.New()
	svc.On("GetSong", mock.Anything, id).Return(nil, store.ErrSongNotFound)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/songs/%s", id), nil)
	rec := httptest.NewRecorder()

	catalogTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSongInvalidID(t *testing.T) {
	t.Parallel()

	svc := &mockCatalogService{}

	req := httptest.NewRequest(http.MethodGet, "/songs/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	catalogTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "GetSong", mock.Anything, mock.Anything)
}
