package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/davmoren/tunebase/internal/domain"
	"github.com/davmoren/tunebase/internal/platform/logger"
	"github.com/davmoren/tunebase/internal/store"
	"github.com/google/uuid"
)

// PlaylistStore implements the store.PlaylistStore interface
// using a PostgreSQL database as the storage backend.
type PlaylistStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPlaylistStore creates a new PostgreSQL implementation of the
// PlaylistStore interface. If logger is nil, a default logger will be used.
func NewPlaylistStore(db store.DBTX, logger *slog.Logger) *PlaylistStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PlaylistStore{
		db:     db,
		logger: logger.With(slog.String("component", "playlist_store")),
	}
}

// Ensure PlaylistStore implements store.PlaylistStore interface
var _ store.PlaylistStore = (*PlaylistStore)(nil)

// Create implements store.PlaylistStore.Create
// Returns store.ErrInvalidEntity if the owning user does not exist.
func (s *PlaylistStore) Create(ctx context.Context, playlist *domain.Playlist) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := playlist.Validate(); err != nil {
		log.Warn("playlist validation failed during create",
			slog.String("error", err.Error()),
			slog.String("playlist_id", playlist.ID.String()))
		return err
	}

	query := `
		INSERT INTO playlists (id, user_id, name, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, playlist.ID, playlist.UserID, playlist.Name, playlist.CreatedAt)
	if err != nil {
		log.Error("failed to create playlist",
			slog.String("error", err.Error()),
			slog.String("playlist_id", playlist.ID.String()),
			slog.String("user_id", playlist.UserID.String()))
		return MapError(err)
	}

	log.Info("playlist created successfully",
		slog.String("playlist_id", playlist.ID.String()),
		slog.String("user_id", playlist.UserID.String()))
	return nil
}

// GetByID implements store.PlaylistStore.GetByID
// Returns store.ErrPlaylistNotFound if the playlist does not exist.
func (s *PlaylistStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, name, created_at
		FROM playlists
		WHERE id = $1
	`

	var playlist domain.Playlist
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&playlist.ID,
		&playlist.UserID,
		&playlist.Name,
		&playlist.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debug("playlist not found", slog.String("playlist_id", id.String()))
			return nil, store.ErrPlaylistNotFound
		}
		log.Error("failed to get playlist by ID",
			slog.String("error", err.Error()),
			slog.String("playlist_id", id.String()))
		return nil, MapError(err)
	}

	return &playlist, nil
}

// ListByUser implements store.PlaylistStore.ListByUser
// Returns an empty slice when the user has no playlists.
func (s *PlaylistStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Playlist, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, name, created_at
		FROM playlists
		WHERE user_id = $1
		ORDER BY created_at, name
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list playlists",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var playlists []*domain.Playlist
	for rows.Next() {
		var playlist domain.Playlist
		if err := rows.Scan(&playlist.ID, &playlist.UserID, &playlist.Name, &playlist.CreatedAt); err != nil {
			log.Error("failed to scan playlist row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		playlists = append(playlists, &playlist)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if playlists == nil {
		playlists = []*domain.Playlist{}
	}

	return playlists, nil
}

// Count implements store.PlaylistStore.Count
func (s *PlaylistStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM playlists`).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// WithTx implements store.PlaylistStore.WithTx
func (s *PlaylistStore) WithTx(tx *sql.Tx) store.PlaylistStore {
	return &PlaylistStore{
		db:     tx,
		logger: s.logger,
	}
}
