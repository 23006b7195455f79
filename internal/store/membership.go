package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/davmoren/tunebase/internal/domain"
	"github.com/google/uuid"
)

// PlaylistSong is a membership joined with its song's catalog fields, in the
// shape playlist listings need. AddedAt comes from the membership row.
type PlaylistSong struct {
	SongID          uuid.UUID
	Title           string
	Artist          string
	DurationSeconds int
	AddedAt         time.Time
}

// MembershipStore defines the interface for playlist membership persistence.
//
// The schema carries a unique constraint on (playlist_id, song_id), so two
// concurrent adds of the same song to the same playlist cannot both succeed.
// Create surfaces that constraint as ErrDuplicateMembership.
type MembershipStore interface {
	// Create saves a new membership to the store.
	// Returns ErrDuplicateMembership if the song is already in the playlist.
	// Returns ErrInvalidEntity if the playlist or song does not exist.
	Create(ctx context.Context, m *domain.Membership) error

	// Delete removes the membership linking the given song to the given
	// playlist. Returns ErrMembershipNotFound if no such membership exists.
	Delete(ctx context.Context, playlistID, songID uuid.UUID) error

	// ListSongs retrieves the member songs of a playlist joined with their
	// catalog fields, ordered by added-at ascending (insertion order).
	ListSongs(ctx context.Context, playlistID uuid.UUID) ([]*PlaylistSong, error)

	// Exists reports whether the given song is a member of the given playlist.
	Exists(ctx context.Context, playlistID, songID uuid.UUID) (bool, error)

	// WithTx returns a new MembershipStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) MembershipStore
}
