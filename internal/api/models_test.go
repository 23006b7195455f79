package api

import (
	"testing"
	"time"

	"github.com/davmoren/tunebase/internal/domain"
	"github.com/davmoren/tunebase/internal/service"
	"github.com/davmoren/tunebase/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{59, "00:59"},
		{60, "01:00"},
		{264, "04:24"},
		{600, "10:00"},
		{3599, "59:59"},
		{3600, "60:00"},
		{5400, "90:00"},
		{-10, "00:00"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, formatDuration(tc.seconds), "seconds=%d", tc.seconds)
	}
}

func TestSongToResponse(t *testing.T) {
	t.Parallel()

	song := &domain.Song{
		ID:              uuid.New(),
		Title:           "Karma Police",
		Artist:          "Radiohead",
		DurationSeconds: 264,
	}

	resp := songToResponse(song)
	assert.Equal(t, song.ID.String(), resp.ID)
	assert.Equal(t, "Karma Police", resp.Title)
	assert.Equal(t, "04:24", resp.Duration)
}

func TestPlaylistDetailToResponse(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	detail := &service.PlaylistDetail{
		Playlist: domain.Playlist{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      "Morning Mix",
			CreatedAt: time.Now().UTC(),
		},
		OwnerName:  "Ada",
		OwnerEmail: "ada@example.com",
		Songs: []*store.PlaylistSong{
			{SongID: uuid.New(), Title: "Airbag", Artist: "Radiohead", DurationSeconds: 284, AddedAt: time.Now().UTC()},
			{SongID: uuid.New(), Title: "Reckoner", Artist: "Radiohead", DurationSeconds: 290, AddedAt: time.Now().UTC()},
		},
		TotalDurationSeconds: 574,
	}

	resp := playlistDetailToResponse(detail)
	assert.Equal(t, userID.String(), resp.OwnerID)
	assert.Equal(t, "Ada", resp.OwnerName)
	assert.Equal(t, 2, resp.SongCount)
	assert.Equal(t, "09:34", resp.TotalDuration)
	assert.Len(t, resp.Songs, 2)
	assert.Equal(t, "04:44", resp.Songs[0].Duration)
}
