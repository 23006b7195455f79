package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewSong(t *testing.T) {
	song, err := NewSong("Bohemian Rhapsody", "Queen", 354)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if song.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if song.Title != "Bohemian Rhapsody" {
		t.Errorf("Expected title Bohemian Rhapsody, got %s", song.Title)
	}

	if song.DurationSeconds != 354 {
		t.Errorf("Expected duration 354, got %d", song.DurationSeconds)
	}

	if _, err := NewSong("", "Queen", 354); err != ErrEmptySongTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptySongTitle, err)
	}

	if _, err := NewSong("Bohemian Rhapsody", "", 354); err != ErrEmptyArtist {
		t.Errorf("Expected error %v, got %v", ErrEmptyArtist, err)
	}

	if _, err := NewSong("Bohemian Rhapsody", "Queen", 0); err != ErrInvalidDuration {
		t.Errorf("Expected error %v, got %v", ErrInvalidDuration, err)
	}

	if _, err := NewSong("Bohemian Rhapsody", "Queen", -10); err != ErrInvalidDuration {
		t.Errorf("Expected error %v, got %v", ErrInvalidDuration, err)
	}
}

func TestSongValidateLengths(t *testing.T) {
	song := Song{
		ID:              uuid.New(),
		Title:           strings.Repeat("t", MaxSongTitleLength+1),
		Artist:          "Queen",
		DurationSeconds: 354,
	}
	if err := song.Validate(); err != ErrSongTitleTooLong {
		t.Errorf("Expected error %v, got %v", ErrSongTitleTooLong, err)
	}

	song.Title = "Bohemian Rhapsody"
	song.Artist = strings.Repeat("a", MaxSongArtistLength+1)
	if err := song.Validate(); err != ErrArtistTooLong {
		t.Errorf("Expected error %v, got %v", ErrArtistTooLong, err)
	}

	// Limits count characters, not bytes.
	song.Artist = strings.Repeat("ö", MaxSongArtistLength)
	if err := song.Validate(); err != nil {
		t.Errorf("Expected no error for 50-char multibyte artist, got %v", err)
	}
}
