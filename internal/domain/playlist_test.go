package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewPlaylist(t *testing.T) {
	userID := uuid.New()

	playlist, err := NewPlaylist(userID, "Road Trip")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if playlist.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if playlist.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, playlist.UserID)
	}

	if playlist.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if _, err := NewPlaylist(uuid.Nil, "Road Trip"); err != ErrEmptyPlaylistUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyPlaylistUserID, err)
	}

	if _, err := NewPlaylist(userID, ""); err != ErrEmptyPlaylistName {
		t.Errorf("Expected error %v, got %v", ErrEmptyPlaylistName, err)
	}

	longName := strings.Repeat("n", MaxPlaylistNameLength+1)
	if _, err := NewPlaylist(userID, longName); err != ErrPlaylistNameTooLong {
		t.Errorf("Expected error %v, got %v", ErrPlaylistNameTooLong, err)
	}

	// Exactly at the limit is allowed.
	edgeName := strings.Repeat("n", MaxPlaylistNameLength)
	if _, err := NewPlaylist(userID, edgeName); err != nil {
		t.Errorf("Expected no error for 50-char name, got %v", err)
	}

	// The limit counts characters, not bytes: 30 two-byte runes fit.
	multibyteName := strings.Repeat("é", 30)
	if _, err := NewPlaylist(userID, multibyteName); err != nil {
		t.Errorf("Expected no error for 30-char multibyte name, got %v", err)
	}

	longMultibyteName := strings.Repeat("é", MaxPlaylistNameLength+1)
	if _, err := NewPlaylist(userID, longMultibyteName); err != ErrPlaylistNameTooLong {
		t.Errorf("Expected error %v, got %v", ErrPlaylistNameTooLong, err)
	}
}

func TestNewMembership(t *testing.T) {
	playlistID := uuid.New()
	songID := uuid.New()

	m, err := NewMembership(playlistID, songID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if m.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if m.PlaylistID != playlistID || m.SongID != songID {
		t.Error("Expected membership to reference the given playlist and song")
	}

	if m.AddedAt.IsZero() {
		t.Error("Expected non-zero AddedAt time")
	}

	if _, err := NewMembership(uuid.Nil, songID); err != ErrEmptyMembershipPlaylistID {
		t.Errorf("Expected error %v, got %v", ErrEmptyMembershipPlaylistID, err)
	}

	if _, err := NewMembership(playlistID, uuid.Nil); err != ErrEmptyMembershipSongID {
		t.Errorf("Expected error %v, got %v", ErrEmptyMembershipSongID, err)
	}
}
