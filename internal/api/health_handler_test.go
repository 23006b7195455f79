package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davmoren/tunebase/internal/domain"
	"github.com/davmoren/tunebase/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserStore implements store.UserStore with a fixed count.
type stubUserStore struct {
	count int
	err   error
}

func (s *stubUserStore) Create(context.Context, *domain.User) error { return nil }
func (s *stubUserStore) GetByID(context.Context, uuid.UUID) (*domain.User, error) {
	return nil, store.ErrUserNotFound
}
func (s *stubUserStore) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, store.ErrUserNotFound
}
func (s *stubUserStore) Count(context.Context) (int, error) { return s.count, s.err }
func (s *stubUserStore) WithTx(*sql.Tx) store.UserStore     { return s }

// stubSongStore implements store.SongStore with a fixed count.
type stubSongStore struct {
	count int
	err   error
}

func (s *stubSongStore) Create(context.Context, *domain.Song) error { return nil }
func (s *stubSongStore) GetByID(context.Context, uuid.UUID) (*domain.Song, error) {
	return nil, store.ErrSongNotFound
}
func (s *stubSongStore) List(context.Context) ([]*domain.Song, error) { return nil, nil }
func (s *stubSongStore) Search(context.Context, string, string) ([]*domain.Song, error) {
	return nil, nil
}
func (s *stubSongStore) Count(context.Context) (int, error) { return s.count, s.err }
func (s *stubSongStore) WithTx(*sql.Tx) store.SongStore     { return s }

func TestLiveness(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&stubUserStore{}, &stubSongStore{}, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Liveness(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestReadinessReportsCounts(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&stubUserStore{count: 12}, &stubSongStore{count: 340}, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	h.Readiness(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.Users)
	assert.Equal(t, 340, resp.Songs)
}

func TestReadinessUnavailableWhenStoreFails(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(
		&stubUserStore{err: store.ErrUnavailable},
		&stubSongStore{},
		slog.Default(),
	)

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	h.Readiness(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unavailable", resp.Status)
}
