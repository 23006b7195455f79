package store

import (
	"context"
	"time"

	"github.com/davmoren/tunebase/internal/domain"
	"github.com/google/uuid"
)

// PlanCount is the number of active subscriptions on one plan.
type PlanCount struct {
	PlanType domain.PlanType
	Count    int
}

// DailyCount is the number of records created on one calendar day.
type DailyCount struct {
	Date  time.Time
	Count int
}

// RankedArtist is an artist ranked by how many playlist memberships
// reference their songs.
type RankedArtist struct {
	Artist string
	Count  int
}

// RankedSong is a song ranked by how many playlists it appears in.
type RankedSong struct {
	SongID uuid.UUID
	Title  string
	Artist string
	Count  int
}

// UserActivity is one user's aggregate activity row. LastActivity is the
// creation time of the user's most recently created playlist, nil if the
// user has none.
type UserActivity struct {
	UserID       uuid.UUID
	Name         string
	Email        string
	HasActive    bool
	PlanType     domain.PlanType // empty when HasActive is false
	Playlists    int
	TotalSongs   int
	LastActivity *time.Time
}

// ReportStore defines the read-side aggregation queries the report engine
// runs. All methods observe the current store snapshot and mutate nothing;
// any failure is surfaced so the engine can fail the whole report rather
// than return partial data.
type ReportStore interface {
	// CountUsers returns the total number of users.
	CountUsers(ctx context.Context) (int, error)

	// CountActiveSubscriptions returns the number of active subscriptions.
	CountActiveSubscriptions(ctx context.Context) (int, error)

	// ActiveSubscriptionsByPlan returns active-subscription counts grouped
	// by plan type.
	ActiveSubscriptionsByPlan(ctx context.Context) ([]*PlanCount, error)

	// SubscriptionsPerDay returns daily counts of subscriptions created at
	// or after the given instant, ordered by date ascending.
	SubscriptionsPerDay(ctx context.Context, since time.Time) ([]*DailyCount, error)

	// CountSongs returns the total number of songs.
	CountSongs(ctx context.Context) (int, error)

	// CountPlaylists returns the total number of playlists.
	CountPlaylists(ctx context.Context) (int, error)

	// AveragePlaylistSize returns the mean membership count over playlists
	// that have at least one member, 0 when no memberships exist.
	AveragePlaylistSize(ctx context.Context) (float64, error)

	// TopArtists returns up to limit artists ranked by membership
	// occurrences, descending, ties broken by artist name.
	TopArtists(ctx context.Context, limit int) ([]*RankedArtist, error)

	// TopSongs returns up to limit songs ranked by membership occurrences,
	// descending, ties broken by title.
	TopSongs(ctx context.Context, limit int) ([]*RankedSong, error)

	// PlaylistsPerDay returns daily counts of playlists created at or after
	// the given instant, ordered by date ascending.
	PlaylistsPerDay(ctx context.Context, since time.Time) ([]*DailyCount, error)

	// UserActivities returns one aggregate row per user, ordered by last
	// activity descending with never-active users last.
	UserActivities(ctx context.Context) ([]*UserActivity, error)
}
