package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/davmoren/tunebase/internal/domain"
	"github.com/davmoren/tunebase/internal/platform/logger"
	"github.com/davmoren/tunebase/internal/store"
)

// ReportStore implements the store.ReportStore interface
// using a PostgreSQL database as the storage backend.
//
// All queries are read-only aggregations over the live tables. There is no
// WithTx variant; reports read the current snapshot and tolerate writers
// racing individual queries.
type ReportStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewReportStore creates a new PostgreSQL implementation of the
// ReportStore interface. If logger is nil, a default logger will be used.
func NewReportStore(db store.DBTX, logger *slog.Logger) *ReportStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ReportStore{
		db:     db,
		logger: logger.With(slog.String("component", "report_store")),
	}
}

// Ensure ReportStore implements store.ReportStore interface
var _ store.ReportStore = (*ReportStore)(nil)

// CountUsers implements store.ReportStore.CountUsers
func (s *ReportStore) CountUsers(ctx context.Context) (int, error) {
	return s.countQuery(ctx, `SELECT COUNT(*) FROM users`)
}

// CountActiveSubscriptions implements store.ReportStore.CountActiveSubscriptions
func (s *ReportStore) CountActiveSubscriptions(ctx context.Context) (int, error) {
	return s.countQuery(ctx, `SELECT COUNT(*) FROM subscriptions WHERE is_active`)
}

// ActiveSubscriptionsByPlan implements store.ReportStore.ActiveSubscriptionsByPlan
func (s *ReportStore) ActiveSubscriptionsByPlan(ctx context.Context) ([]*store.PlanCount, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT plan_type, COUNT(*)
		FROM subscriptions
		WHERE is_active
		GROUP BY plan_type
		ORDER BY plan_type
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query subscriptions by plan", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var counts []*store.PlanCount
	for rows.Next() {
		var plan string
		var pc store.PlanCount
		if err := rows.Scan(&plan, &pc.Count); err != nil {
			log.Error("failed to scan plan count row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		pc.PlanType = domain.PlanType(plan)
		counts = append(counts, &pc)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if counts == nil {
		counts = []*store.PlanCount{}
	}

	return counts, nil
}

// SubscriptionsPerDay implements store.ReportStore.SubscriptionsPerDay
func (s *ReportStore) SubscriptionsPerDay(ctx context.Context, since time.Time) ([]*store.DailyCount, error) {
	query := `
		SELECT created_at::date AS day, COUNT(*)
		FROM subscriptions
		WHERE created_at >= $1
		GROUP BY day
		ORDER BY day
	`
	return s.queryDailyCounts(ctx, query, since)
}

// CountSongs implements store.ReportStore.CountSongs
func (s *ReportStore) CountSongs(ctx context.Context) (int, error) {
	return s.countQuery(ctx, `SELECT COUNT(*) FROM songs`)
}

// CountPlaylists implements store.ReportStore.CountPlaylists
func (s *ReportStore) CountPlaylists(ctx context.Context) (int, error) {
	return s.countQuery(ctx, `SELECT COUNT(*) FROM playlists`)
}

// AveragePlaylistSize implements store.ReportStore.AveragePlaylistSize
// Playlists with no memberships do not contribute rows to playlist_songs,
// so the average runs over non-empty playlists only. COALESCE covers the
// no-memberships-at-all case.
func (s *ReportStore) AveragePlaylistSize(ctx context.Context) (float64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT COALESCE(AVG(n), 0)
		FROM (
			SELECT COUNT(*) AS n
			FROM playlist_songs
			GROUP BY playlist_id
		) sizes
	`

	var avg float64
	err := s.db.QueryRowContext(ctx, query).Scan(&avg)
	if err != nil {
		log.Error("failed to query average playlist size", slog.String("error", err.Error()))
		return 0, MapError(err)
	}
	return avg, nil
}

// TopArtists implements store.ReportStore.TopArtists
func (s *ReportStore) TopArtists(ctx context.Context, limit int) ([]*store.RankedArtist, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT s.artist, COUNT(*)
		FROM playlist_songs ps
		JOIN songs s ON s.id = ps.song_id
		GROUP BY s.artist
		ORDER BY COUNT(*) DESC, s.artist
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		log.Error("failed to query top artists", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var artists []*store.RankedArtist
	for rows.Next() {
		var ra store.RankedArtist
		if err := rows.Scan(&ra.Artist, &ra.Count); err != nil {
			log.Error("failed to scan ranked artist row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		artists = append(artists, &ra)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if artists == nil {
		artists = []*store.RankedArtist{}
	}

	return artists, nil
}

// TopSongs implements store.ReportStore.TopSongs
func (s *ReportStore) TopSongs(ctx context.Context, limit int) ([]*store.RankedSong, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT s.id, s.title, s.artist, COUNT(*)
		FROM playlist_songs ps
		JOIN songs s ON s.id = ps.song_id
		GROUP BY s.id, s.title, s.artist
		ORDER BY COUNT(*) DESC, s.title
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		log.Error("failed to query top songs", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var songs []*store.RankedSong
	for rows.Next() {
		var rs store.RankedSong
		if err := rows.Scan(&rs.SongID, &rs.Title, &rs.Artist, &rs.Count); err != nil {
			log.Error("failed to scan ranked song row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		songs = append(songs, &rs)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if songs == nil {
		songs = []*store.RankedSong{}
	}

	return songs, nil
}

// PlaylistsPerDay implements store.ReportStore.PlaylistsPerDay
func (s *ReportStore) PlaylistsPerDay(ctx context.Context, since time.Time) ([]*store.DailyCount, error) {
	query := `
		SELECT created_at::date AS day, COUNT(*)
		FROM playlists
		WHERE created_at >= $1
		GROUP BY day
		ORDER BY day
	`
	return s.queryDailyCounts(ctx, query, since)
}

// UserActivities implements store.ReportStore.UserActivities
func (s *ReportStore) UserActivities(ctx context.Context) ([]*store.UserActivity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			u.id,
			u.name,
			u.email,
			sub.id IS NOT NULL AS has_active,
			COALESCE(sub.plan_type, '') AS plan_type,
			COALESCE(pl.playlists, 0) AS playlists,
			COALESCE(pl.total_songs, 0) AS total_songs,
			pl.last_activity
		FROM users u
		LEFT JOIN subscriptions sub
			ON sub.user_id = u.id AND sub.is_active
		LEFT JOIN (
			SELECT
				p.user_id,
				COUNT(*) AS playlists,
				COALESCE(SUM(sizes.n), 0) AS total_songs,
				MAX(p.created_at) AS last_activity
			FROM playlists p
			LEFT JOIN (
				SELECT playlist_id, COUNT(*) AS n
				FROM playlist_songs
				GROUP BY playlist_id
			) sizes ON sizes.playlist_id = p.id
			GROUP BY p.user_id
		) pl ON pl.user_id = u.id
		ORDER BY pl.last_activity DESC NULLS LAST, u.name
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query user activities", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var activities []*store.UserActivity
	for rows.Next() {
		var ua store.UserActivity
		var plan string
		var lastActivity sql.NullTime
		if err := rows.Scan(
			&ua.UserID,
			&ua.Name,
			&ua.Email,
			&ua.HasActive,
			&plan,
			&ua.Playlists,
			&ua.TotalSongs,
			&lastActivity,
		); err != nil {
			log.Error("failed to scan user activity row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		ua.PlanType = domain.PlanType(plan)
		if lastActivity.Valid {
			t := lastActivity.Time
			ua.LastActivity = &t
		}
		activities = append(activities, &ua)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if activities == nil {
		activities = []*store.UserActivity{}
	}

	return activities, nil
}

// countQuery runs a single-integer aggregate query.
func (s *ReportStore) countQuery(ctx context.Context, query string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// queryDailyCounts runs a per-day aggregate query and scans the rows.
func (s *ReportStore) queryDailyCounts(ctx context.Context, query string, since time.Time) ([]*store.DailyCount, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, since)
	if err != nil {
		log.Error("failed to query daily counts", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var counts []*store.DailyCount
	for rows.Next() {
		var dc store.DailyCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			log.Error("failed to scan daily count row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		counts = append(counts, &dc)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if counts == nil {
		counts = []*store.DailyCount{}
	}

	return counts, nil
}
