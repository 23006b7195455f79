package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Membership.
var (
	ErrEmptyMembershipID         = errors.New("membership ID cannot be empty")
	ErrEmptyMembershipPlaylistID = errors.New("membership playlist ID cannot be empty")
	ErrEmptyMembershipSongID     = errors.New("membership song ID cannot be empty")
)

// Membership links one song into one playlist, timestamped by insertion.
// A song may appear at most once in a given playlist; the store enforces the
// (playlist, song) pair uniqueness with a unique constraint so concurrent
// inserts cannot both succeed.
type Membership struct {
	ID         uuid.UUID `json:"id"`
	PlaylistID uuid.UUID `json:"playlist_id"`
	SongID     uuid.UUID `json:"song_id"`
	AddedAt    time.Time `json:"added_at"`
}

// NewMembership creates a new Membership linking the given song into the
// given playlist. It generates a new UUID for the membership ID and sets the
// added-at timestamp. Returns an error if validation fails.
func NewMembership(playlistID, songID uuid.UUID) (*Membership, error) {
	m := &Membership{
		ID:         uuid.New(),
		PlaylistID: playlistID,
		SongID:     songID,
		AddedAt:    time.Now().UTC(),
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate checks if the Membership has valid data.
// Returns an error if any field fails validation.
func (m *Membership) Validate() error {
	if m.ID == uuid.Nil {
		return ErrEmptyMembershipID
	}

	if m.PlaylistID == uuid.Nil {
		return ErrEmptyMembershipPlaylistID
	}

	if m.SongID == uuid.Nil {
		return ErrEmptyMembershipSongID
	}

	return nil
}
