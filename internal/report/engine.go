package report

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/davmoren/tunebase/internal/domain"
	"github.com/davmoren/tunebase/internal/platform/logger"
	"github.com/davmoren/tunebase/internal/store"
)

const (
	// trailingWindow is the look-back period for daily series and activity.
	trailingWindow = 30 * 24 * time.Hour

	// topLimit caps the ranked artist and song lists.
	topLimit = 10

	// detailLimit caps the user activity detail rows.
	detailLimit = 20
)

// PlanShare is one plan's slice of the active subscription base.
type PlanShare struct {
	PlanType   domain.PlanType `json:"plan_type"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
}

// DailyCount is one day's record count within a trailing series.
type DailyCount struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// SubscriptionReport aggregates the subscription base at one instant.
type SubscriptionReport struct {
	GeneratedAt           time.Time    `json:"generated_at"`
	TotalUsers            int          `json:"total_users"`
	ActiveSubscriptions   int          `json:"active_subscriptions"`
	SubscriptionRate      float64      `json:"subscription_rate"`
	PlanBreakdown         []PlanShare  `json:"plan_breakdown"`
	DailyNewSubscriptions []DailyCount `json:"daily_new_subscriptions"`
}

// RankedArtist is an artist with its playlist membership count.
type RankedArtist struct {
	Artist string `json:"artist"`
	Count  int    `json:"count"`
}

// RankedSong is a song with its playlist membership count.
type RankedSong struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Count  int    `json:"count"`
}

// UsageReport aggregates catalog and playlist usage at one instant.
type UsageReport struct {
	GeneratedAt         time.Time      `json:"generated_at"`
	TotalSongs          int            `json:"total_songs"`
	TotalPlaylists      int            `json:"total_playlists"`
	AveragePlaylistSize float64        `json:"average_playlist_size"`
	TopArtists          []RankedArtist `json:"top_artists"`
	TopSongs            []RankedSong   `json:"top_songs"`
	DailyNewPlaylists   []DailyCount   `json:"daily_new_playlists"`
}

// UserActivityRow is one user's aggregate activity in the detail listing.
type UserActivityRow struct {
	Name                  string          `json:"name"`
	Email                 string          `json:"email"`
	HasActiveSubscription bool            `json:"has_active_subscription"`
	PlanType              domain.PlanType `json:"plan_type,omitempty"`
	Playlists             int             `json:"playlists"`
	TotalSongs            int             `json:"total_songs"`
	LastActivity          *time.Time      `json:"last_activity,omitempty"`
}

// UserActivityReport summarizes per-user engagement at one instant. Detail is
// capped to the most recently active users, inactive users last.
type UserActivityReport struct {
	GeneratedAt      time.Time         `json:"generated_at"`
	TotalUsers       int               `json:"total_users"`
	ActiveLast30Days int               `json:"active_last_30_days"`
	PremiumUsers     int               `json:"premium_users"`
	ActivityRate     float64           `json:"activity_rate"`
	Detail           []UserActivityRow `json:"detail"`
}

// Engine runs the aggregate queries for each report and assembles the
// derived figures.
type Engine struct {
	store  store.ReportStore
	logger *slog.Logger
	now    func() time.Time
}

// NewEngine creates a report engine over the given report store.
// It returns an error if the store is nil.
func NewEngine(reportStore store.ReportStore, logger *slog.Logger) (*Engine, error) {
	if reportStore == nil {
		return nil, domain.NewValidationError("reportStore", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		store:  reportStore,
		logger: logger.With(slog.String("component", "report_engine")),
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

// SubscriptionReport builds the subscription report: totals, the subscription
// rate, the per-plan breakdown among active subscriptions and the trailing
// 30-day daily series of new subscriptions.
func (e *Engine) SubscriptionReport(ctx context.Context) (*SubscriptionReport, error) {
	log := logger.FromContextOrDefault(ctx, e.logger)
	generatedAt := e.now()

	totalUsers, err := e.store.CountUsers(ctx)
	if err != nil {
		log.Error("failed to count users", slog.String("error", err.Error()))
		return nil, fmt.Errorf("subscription report: count users: %w", err)
	}

	active, err := e.store.CountActiveSubscriptions(ctx)
	if err != nil {
		log.Error("failed to count active subscriptions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("subscription report: count active subscriptions: %w", err)
	}

	byPlan, err := e.store.ActiveSubscriptionsByPlan(ctx)
	if err != nil {
		log.Error("failed to group subscriptions by plan", slog.String("error", err.Error()))
		return nil, fmt.Errorf("subscription report: group by plan: %w", err)
	}

	daily, err := e.store.SubscriptionsPerDay(ctx, generatedAt.Add(-trailingWindow))
	if err != nil {
		log.Error("failed to build daily subscription series", slog.String("error", err.Error()))
		return nil, fmt.Errorf("subscription report: daily series: %w", err)
	}

	breakdown := make([]PlanShare, 0, len(byPlan))
	for _, pc := range byPlan {
		breakdown = append(breakdown, PlanShare{
			PlanType:   pc.PlanType,
			Count:      pc.Count,
			Percentage: rate(pc.Count, active),
		})
	}

	return &SubscriptionReport{
		GeneratedAt:           generatedAt,
		TotalUsers:            totalUsers,
		ActiveSubscriptions:   active,
		SubscriptionRate:      rate(active, totalUsers),
		PlanBreakdown:         breakdown,
		DailyNewSubscriptions: dailySeries(daily),
	}, nil
}

// UsageReport builds the usage report: catalog and playlist totals, the
// average playlist size, the top artists and songs by playlist membership
// and the trailing 30-day daily series of new playlists.
func (e *Engine) UsageReport(ctx context.Context) (*UsageReport, error) {
	log := logger.FromContextOrDefault(ctx, e.logger)
	generatedAt := e.now()

	totalSongs, err := e.store.CountSongs(ctx)
	if err != nil {
		log.Error("failed to count songs", slog.String("error", err.Error()))
		return nil, fmt.Errorf("usage report: count songs: %w", err)
	}

	totalPlaylists, err := e.store.CountPlaylists(ctx)
	if err != nil {
		log.Error("failed to count playlists", slog.String("error", err.Error()))
		return nil, fmt.Errorf("usage report: count playlists: %w", err)
	}

	avgSize, err := e.store.AveragePlaylistSize(ctx)
	if err != nil {
		log.Error("failed to compute average playlist size", slog.String("error", err.Error()))
		return nil, fmt.Errorf("usage report: average playlist size: %w", err)
	}

	topArtists, err := e.store.TopArtists(ctx, topLimit)
	if err != nil {
		log.Error("failed to rank artists", slog.String("error", err.Error()))
		return nil, fmt.Errorf("usage report: top artists: %w", err)
	}

	topSongs, err := e.store.TopSongs(ctx, topLimit)
	if err != nil {
		log.Error("failed to rank songs", slog.String("error", err.Error()))
		return nil, fmt.Errorf("usage report: top songs: %w", err)
	}

	daily, err := e.store.PlaylistsPerDay(ctx, generatedAt.Add(-trailingWindow))
	if err != nil {
		log.Error("failed to build daily playlist series", slog.String("error", err.Error()))
		return nil, fmt.Errorf("usage report: daily series: %w", err)
	}

	artists := make([]RankedArtist, 0, len(topArtists))
	for _, ra := range topArtists {
		artists = append(artists, RankedArtist{Artist: ra.Artist, Count: ra.Count})
	}

	songs := make([]RankedSong, 0, len(topSongs))
	for _, rs := range topSongs {
		songs = append(songs, RankedSong{Title: rs.Title, Artist: rs.Artist, Count: rs.Count})
	}

	return &UsageReport{
		GeneratedAt:         generatedAt,
		TotalSongs:          totalSongs,
		TotalPlaylists:      totalPlaylists,
		AveragePlaylistSize: round1(avgSize),
		TopArtists:          artists,
		TopSongs:            songs,
		DailyNewPlaylists:   dailySeries(daily),
	}, nil
}

// UserActivityReport builds the per-user engagement report. A user counts as
// active in the trailing window if their newest playlist was created within
// it.
func (e *Engine) UserActivityReport(ctx context.Context) (*UserActivityReport, error) {
	log := logger.FromContextOrDefault(ctx, e.logger)
	generatedAt := e.now()

	activities, err := e.store.UserActivities(ctx)
	if err != nil {
		log.Error("failed to load user activities", slog.String("error", err.Error()))
		return nil, fmt.Errorf("user activity report: load activities: %w", err)
	}

	cutoff := generatedAt.Add(-trailingWindow)
	activeLast30 := 0
	premium := 0
	for _, ua := range activities {
		if ua.LastActivity != nil && !ua.LastActivity.Before(cutoff) {
			activeLast30++
		}
		if ua.HasActive && ua.PlanType == domain.PlanPremium {
			premium++
		}
	}

	detail := make([]UserActivityRow, 0, detailLimit)
	for _, ua := range activities {
		if len(detail) == detailLimit {
			break
		}
		detail = append(detail, UserActivityRow{
			Name:                  ua.Name,
			Email:                 ua.Email,
			HasActiveSubscription: ua.HasActive,
			PlanType:              ua.PlanType,
			Playlists:             ua.Playlists,
			TotalSongs:            ua.TotalSongs,
			LastActivity:          ua.LastActivity,
		})
	}

	return &UserActivityReport{
		GeneratedAt:      generatedAt,
		TotalUsers:       len(activities),
		ActiveLast30Days: activeLast30,
		PremiumUsers:     premium,
		ActivityRate:     rate(activeLast30, len(activities)),
		Detail:           detail,
	}, nil
}

// rate converts part/whole into a percentage rounded to two decimals,
// 0 when the denominator is 0.
func rate(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return round2(float64(part) / float64(whole) * 100)
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// dailySeries converts store rows into report rows, preserving order.
func dailySeries(rows []*store.DailyCount) []DailyCount {
	series := make([]DailyCount, 0, len(rows))
	for _, row := range rows {
		series = append(series, DailyCount{Date: row.Date, Count: row.Count})
	}
	return series
}
