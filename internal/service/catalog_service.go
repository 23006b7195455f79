package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/davmoren/tunebase/internal/domain"
	"github.com/davmoren/tunebase/internal/platform/logger"
	"github.com/davmoren/tunebase/internal/store"
	"github.com/google/uuid"
)

// CatalogServiceError is a custom error type for catalog service errors.
type CatalogServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for CatalogServiceError.
func (e *CatalogServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("catalog service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *CatalogServiceError) Unwrap() error {
	return e.Err
}

// NewCatalogServiceError creates a new CatalogServiceError.
func NewCatalogServiceError(operation, message string, err error) *CatalogServiceError {
	return &CatalogServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// CatalogService provides read access to the song catalog.
type CatalogService interface {
	// ListSongs retrieves the full catalog ordered by title then artist.
	ListSongs(ctx context.Context) ([]*domain.Song, error)

	// GetSong retrieves a song by its ID.
	// Returns store.ErrSongNotFound if the song does not exist.
	GetSong(ctx context.Context, id uuid.UUID) (*domain.Song, error)

	// SearchSongs filters the catalog by artist and title with
	// case-insensitive substring semantics. Empty filters match everything.
	SearchSongs(ctx context.Context, artist, title string) ([]*domain.Song, error)
}

// catalogServiceImpl implements the CatalogService interface
type catalogServiceImpl struct {
	songStore store.SongStore
	logger    *slog.Logger
}

// NewCatalogService creates a new CatalogService.
// It returns an error if the song store is nil.
func NewCatalogService(songStore store.SongStore, logger *slog.Logger) (CatalogService, error) {
	if songStore == nil {
		return nil, domain.NewValidationError("songStore", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &catalogServiceImpl{
		songStore: songStore,
		logger:    logger.With(slog.String("component", "catalog_service")),
	}, nil
}

// ListSongs implements CatalogService.ListSongs
func (s *catalogServiceImpl) ListSongs(ctx context.Context) ([]*domain.Song, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	songs, err := s.songStore.List(ctx)
	if err != nil {
		log.Error("failed to list songs", slog.String("error", err.Error()))
		return nil, NewCatalogServiceError("list_songs", "failed to list songs", err)
	}

	return songs, nil
}

// GetSong implements CatalogService.GetSong
func (s *catalogServiceImpl) GetSong(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	song, err := s.songStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		log.Error("failed to get song",
			slog.String("error", err.Error()),
			slog.String("song_id", id.String()))
		return nil, NewCatalogServiceError("get_song", "failed to get song", err)
	}

	return song, nil
}

// SearchSongs implements CatalogService.SearchSongs
func (s *catalogServiceImpl) SearchSongs(ctx context.Context, artist, title string) ([]*domain.Song, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	songs, err := s.songStore.Search(ctx, artist, title)
	if err != nil {
		log.Error("failed to search songs",
			slog.String("error", err.Error()),
			slog.String("artist_filter", artist),
			slog.String("title_filter", title))
		return nil, NewCatalogServiceError("search_songs", "failed to search songs", err)
	}

	return songs, nil
}
