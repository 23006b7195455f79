// Package api provides HTTP handlers for the API.
package api

import (
	"fmt"
	"time"

	"github.com/davmoren/tunebase/internal/domain"
	"github.com/davmoren/tunebase/internal/service"
	"github.com/davmoren/tunebase/internal/store"
)

// SongResponse represents the response data for a catalog song.
// Duration is formatted MM:SS at this boundary only; everything below the
// API layer works in integer seconds.
type SongResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Duration string `json:"duration"`
}

// PlaylistSongResponse represents one member song within a playlist response.
type PlaylistSongResponse struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Artist   string    `json:"artist"`
	Duration string    `json:"duration"`
	AddedAt  time.Time `json:"added_at"`
}

// PlaylistResponse represents the response data for a playlist listing entry.
type PlaylistResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	SongCount int                    `json:"song_count"`
	CreatedAt time.Time              `json:"created_at"`
	Songs     []PlaylistSongResponse `json:"songs"`
}

// PlaylistDetailResponse represents the response data for one playlist with
// its owner and aggregate duration.
type PlaylistDetailResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	OwnerID       string                 `json:"owner_id"`
	OwnerName     string                 `json:"owner_name"`
	OwnerEmail    string                 `json:"owner_email"`
	SongCount     int                    `json:"song_count"`
	TotalDuration string                 `json:"total_duration"`
	CreatedAt     time.Time              `json:"created_at"`
	Songs         []PlaylistSongResponse `json:"songs"`
}

// SubscriptionResponse represents the response data for a subscription.
type SubscriptionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PlanType  string    `json:"plan_type"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ActiveSubscriptionResponse is a subscription joined with its owner.
type ActiveSubscriptionResponse struct {
	SubscriptionResponse
	OwnerName  string `json:"owner_name"`
	OwnerEmail string `json:"owner_email"`
}

// formatDuration renders a duration in seconds as MM:SS. Durations of an
// hour or more keep accumulating minutes (90:00 for 5400 seconds).
func formatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// songToResponse converts a domain song to its response representation.
func songToResponse(song *domain.Song) SongResponse {
	return SongResponse{
		ID:       song.ID.String(),
		Title:    song.Title,
		Artist:   song.Artist,
		Duration: formatDuration(song.DurationSeconds),
	}
}

// songsToResponse converts a slice of domain songs.
func songsToResponse(songs []*domain.Song) []SongResponse {
	out := make([]SongResponse, 0, len(songs))
	for _, song := range songs {
		out = append(out, songToResponse(song))
	}
	return out
}

// playlistSongsToResponse converts member songs to their response shape.
func playlistSongsToResponse(songs []*store.PlaylistSong) []PlaylistSongResponse {
	out := make([]PlaylistSongResponse, 0, len(songs))
	for _, song := range songs {
		out = append(out, PlaylistSongResponse{
			ID:       song.SongID.String(),
			Title:    song.Title,
			Artist:   song.Artist,
			Duration: formatDuration(song.DurationSeconds),
			AddedAt:  song.AddedAt,
		})
	}
	return out
}

// playlistToResponse converts a playlist with songs to its response shape.
func playlistToResponse(playlist *service.PlaylistWithSongs) PlaylistResponse {
	return PlaylistResponse{
		ID:        playlist.ID.String(),
		Name:      playlist.Name,
		SongCount: playlist.SongCount(),
		CreatedAt: playlist.CreatedAt,
		Songs:     playlistSongsToResponse(playlist.Songs),
	}
}

// playlistDetailToResponse converts a playlist detail to its response shape.
func playlistDetailToResponse(detail *service.PlaylistDetail) PlaylistDetailResponse {
	return PlaylistDetailResponse{
		ID:            detail.ID.String(),
		Name:          detail.Name,
		OwnerID:       detail.UserID.String(),
		OwnerName:     detail.OwnerName,
		OwnerEmail:    detail.OwnerEmail,
		SongCount:     len(detail.Songs),
		TotalDuration: formatDuration(detail.TotalDurationSeconds),
		CreatedAt:     detail.CreatedAt,
		Songs:         playlistSongsToResponse(detail.Songs),
	}
}

// subscriptionToResponse converts a domain subscription to its response shape.
func subscriptionToResponse(sub *domain.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:        sub.ID.String(),
		UserID:    sub.UserID.String(),
		PlanType:  string(sub.PlanType),
		IsActive:  sub.IsActive,
		CreatedAt: sub.CreatedAt,
	}
}

// activeSubscriptionToResponse converts an owner-joined subscription.
func activeSubscriptionToResponse(sub *store.ActiveSubscription) ActiveSubscriptionResponse {
	return ActiveSubscriptionResponse{
		SubscriptionResponse: subscriptionToResponse(&sub.Subscription),
		OwnerName:            sub.OwnerName,
		OwnerEmail:           sub.OwnerEmail,
	}
}
