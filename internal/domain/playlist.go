package domain

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxPlaylistNameLength is the maximum length of a playlist name.
const MaxPlaylistNameLength = 50

// Common validation errors for Playlist.
var (
	ErrEmptyPlaylistID     = errors.New("playlist ID cannot be empty")
	ErrEmptyPlaylistUserID = errors.New("playlist user ID cannot be empty")
	ErrEmptyPlaylistName   = errors.New("playlist name cannot be empty")
	ErrPlaylistNameTooLong = errors.New("playlist name must be at most 50 characters long")
)

// Playlist represents a user-owned, named collection of songs. The songs
// themselves are attached through Membership records.
type Playlist struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPlaylist creates a new Playlist owned by the given user.
// It generates a new UUID for the playlist ID and sets the creation
// timestamp. Returns an error if validation fails.
func NewPlaylist(userID uuid.UUID, name string) (*Playlist, error) {
	playlist := &Playlist{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := playlist.Validate(); err != nil {
		return nil, err
	}

	return playlist, nil
}

// Validate checks if the Playlist has valid data.
// Returns an error if any field fails validation.
func (p *Playlist) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPlaylistID
	}

	if p.UserID == uuid.Nil {
		return ErrEmptyPlaylistUserID
	}

	if p.Name == "" {
		return ErrEmptyPlaylistName
	}

	// Length limits count characters, not bytes, to match the VARCHAR columns.
	if utf8.RuneCountInString(p.Name) > MaxPlaylistNameLength {
		return ErrPlaylistNameTooLong
	}

	return nil
}
