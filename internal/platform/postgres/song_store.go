package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/davmoren/tunebase/internal/domain"
	"github.com/davmoren/tunebase/internal/platform/logger"
	"github.com/davmoren/tunebase/internal/store"
	"github.com/google/uuid"
)

// SongStore implements the store.SongStore interface
// using a PostgreSQL database as the storage backend.
type SongStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewSongStore creates a new PostgreSQL implementation of the SongStore interface.
// If logger is nil, a default logger will be used.
func NewSongStore(db store.DBTX, logger *slog.Logger) *SongStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &SongStore{
		db:     db,
		logger: logger.With(slog.String("component", "song_store")),
	}
}

// Ensure SongStore implements store.SongStore interface
var _ store.SongStore = (*SongStore)(nil)

// Create implements store.SongStore.Create
func (s *SongStore) Create(ctx context.Context, song *domain.Song) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := song.Validate(); err != nil {
		log.Warn("song validation failed during create",
			slog.String("error", err.Error()),
			slog.String("song_id", song.ID.String()))
		return err
	}

	query := `
		INSERT INTO songs (id, title, artist, duration_seconds)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, song.ID, song.Title, song.Artist, song.DurationSeconds)
	if err != nil {
		log.Error("failed to create song",
			slog.String("error", err.Error()),
			slog.String("song_id", song.ID.String()))
		return MapError(err)
	}

	log.Info("song created successfully",
		slog.String("song_id", song.ID.String()))
	return nil
}

// GetByID implements store.SongStore.GetByID
// Returns store.ErrSongNotFound if the song does not exist.
func (s *SongStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, artist, duration_seconds
		FROM songs
		WHERE id = $1
	`

	var song domain.Song
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&song.ID,
		&song.Title,
		&song.Artist,
		&song.DurationSeconds,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debug("song not found", slog.String("song_id", id.String()))
			return nil, store.ErrSongNotFound
		}
		log.Error("failed to get song by ID",
			slog.String("error", err.Error()),
			slog.String("song_id", id.String()))
		return nil, MapError(err)
	}

	return &song, nil
}

// List implements store.SongStore.List
func (s *SongStore) List(ctx context.Context) ([]*domain.Song, error) {
	query := `
		SELECT id, title, artist, duration_seconds
		FROM songs
		ORDER BY title, artist
	`
	return s.querySongs(ctx, query)
}

// Search implements store.SongStore.Search
// Both filters use case-insensitive "contains" semantics; empty filters
// match everything.
func (s *SongStore) Search(ctx context.Context, artist, title string) ([]*domain.Song, error) {
	query := `
		SELECT id, title, artist, duration_seconds
		FROM songs
		WHERE artist ILIKE $1 ESCAPE '\'
		  AND title ILIKE $2 ESCAPE '\'
		ORDER BY title, artist
	`
	return s.querySongs(ctx, query, likePattern(artist), likePattern(title))
}

// likePattern wraps a raw filter in wildcards for a "contains" match,
// escaping LIKE metacharacters so user input always matches literally.
func likePattern(filter string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(filter)
	return "%" + escaped + "%"
}

// Count implements store.SongStore.Count
func (s *SongStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM songs`).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// WithTx implements store.SongStore.WithTx
func (s *SongStore) WithTx(tx *sql.Tx) store.SongStore {
	return &SongStore{
		db:     tx,
		logger: s.logger,
	}
}

// querySongs runs a song-shaped query and scans the result rows.
func (s *SongStore) querySongs(ctx context.Context, query string, args ...any) ([]*domain.Song, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query songs", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var songs []*domain.Song
	for rows.Next() {
		var song domain.Song
		if err := rows.Scan(&song.ID, &song.Title, &song.Artist, &song.DurationSeconds); err != nil {
			log.Error("failed to scan song row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		songs = append(songs, &song)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if songs == nil {
		songs = []*domain.Song{}
	}

	return songs, nil
}
