package store

import (
	"context"
	"database/sql"

	"github.com/davmoren/tunebase/internal/domain"
	"github.com/google/uuid"
)

// PlaylistStore defines the interface for playlist data persistence.
type PlaylistStore interface {
	// Create saves a new playlist to the store.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, playlist *domain.Playlist) error

	// GetByID retrieves a playlist by its unique ID.
	// Returns ErrPlaylistNotFound if the playlist does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error)

	// ListByUser retrieves all playlists owned by the given user, ordered by
	// creation time ascending.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Playlist, error)

	// Count returns the total number of playlists.
	Count(ctx context.Context) (int, error)

	// WithTx returns a new PlaylistStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) PlaylistStore
}
