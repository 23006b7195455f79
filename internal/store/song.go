package store

import (
	"context"
	"database/sql"

	"github.com/davmoren/tunebase/internal/domain"
	"github.com/google/uuid"
)

// SongStore defines the interface for song data persistence.
type SongStore interface {
	// Create saves a new song to the store.
	// Returns validation errors from the domain Song if data is invalid.
	Create(ctx context.Context, song *domain.Song) error

	// GetByID retrieves a song by its unique ID.
	// Returns ErrSongNotFound if the song does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error)

	// List retrieves all songs in the catalog.
	List(ctx context.Context) ([]*domain.Song, error)

	// Search retrieves songs whose artist and/or title contain the given
	// substrings, case-insensitively. Empty filter values match everything.
	Search(ctx context.Context, artist, title string) ([]*domain.Song, error)

	// Count returns the total number of songs.
	Count(ctx context.Context) (int, error)

	// WithTx returns a new SongStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) SongStore
}
