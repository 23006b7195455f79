package domain

import (
	"errors"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Maximum field lengths for Song.
const (
	MaxSongTitleLength  = 100
	MaxSongArtistLength = 50
)

// Common validation errors for Song.
var (
	ErrEmptySongID      = errors.New("song ID cannot be empty")
	ErrEmptySongTitle   = errors.New("song title cannot be empty")
	ErrSongTitleTooLong = errors.New("song title must be at most 100 characters long")
	ErrEmptyArtist      = errors.New("song artist cannot be empty")
	ErrArtistTooLong    = errors.New("song artist must be at most 50 characters long")
	ErrInvalidDuration  = errors.New("song duration must be a positive number of seconds")
)

// Song represents a track in the catalog. Songs are created by seed/import
// and are immutable within the core; playlists reference them through
// memberships.
type Song struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Artist          string    `json:"artist"`
	DurationSeconds int       `json:"duration_seconds"`
}

// NewSong creates a new Song with the given title, artist and duration in
// seconds. It generates a new UUID for the song ID.
// Returns an error if validation fails.
func NewSong(title, artist string, durationSeconds int) (*Song, error) {
	song := &Song{
		ID:              uuid.New(),
		Title:           title,
		Artist:          artist,
		DurationSeconds: durationSeconds,
	}

	if err := song.Validate(); err != nil {
		return nil, err
	}

	return song, nil
}

// Validate checks if the Song has valid data.
// Returns an error if any field fails validation.
func (s *Song) Validate() error {
	if s.ID == uuid.Nil {
		return ErrEmptySongID
	}

	if s.Title == "" {
		return ErrEmptySongTitle
	}

	// Length limits count characters, not bytes, to match the VARCHAR columns.
	if utf8.RuneCountInString(s.Title) > MaxSongTitleLength {
		return ErrSongTitleTooLong
	}

	if s.Artist == "" {
		return ErrEmptyArtist
	}

	if utf8.RuneCountInString(s.Artist) > MaxSongArtistLength {
		return ErrArtistTooLong
	}

	if s.DurationSeconds <= 0 {
		return ErrInvalidDuration
	}

	return nil
}
