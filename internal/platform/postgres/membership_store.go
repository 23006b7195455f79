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

// MembershipStore implements the store.MembershipStore interface
// using a PostgreSQL database as the storage backend.
type MembershipStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewMembershipStore creates a new PostgreSQL implementation of the
// MembershipStore interface. If logger is nil, a default logger will be used.
func NewMembershipStore(db store.DBTX, logger *slog.Logger) *MembershipStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &MembershipStore{
		db:     db,
		logger: logger.With(slog.String("component", "membership_store")),
	}
}

// Ensure MembershipStore implements store.MembershipStore interface
var _ store.MembershipStore = (*MembershipStore)(nil)

// Create implements store.MembershipStore.Create
// Returns store.ErrDuplicateMembership if the song is already in the playlist,
// store.ErrInvalidEntity if the playlist or song does not exist.
func (s *MembershipStore) Create(ctx context.Context, m *domain.Membership) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := m.Validate(); err != nil {
		log.Warn("membership validation failed during create",
			slog.String("error", err.Error()),
			slog.String("membership_id", m.ID.String()))
		return err
	}

	query := `
		INSERT INTO playlist_songs (id, playlist_id, song_id, added_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, m.ID, m.PlaylistID, m.SongID, m.AddedAt)
	if err != nil {
		log.Error("failed to create membership",
			slog.String("error", err.Error()),
			slog.String("playlist_id", m.PlaylistID.String()),
			slog.String("song_id", m.SongID.String()))
		return MapError(err)
	}

	log.Info("song added to playlist",
		slog.String("playlist_id", m.PlaylistID.String()),
		slog.String("song_id", m.SongID.String()))
	return nil
}

// Delete implements store.MembershipStore.Delete
// Returns store.ErrMembershipNotFound if the song is not in the playlist.
func (s *MembershipStore) Delete(ctx context.Context, playlistID, songID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM playlist_songs
		WHERE playlist_id = $1 AND song_id = $2
	`
	result, err := s.db.ExecContext(ctx, query, playlistID, songID)
	if err != nil {
		log.Error("failed to delete membership",
			slog.String("error", err.Error()),
			slog.String("playlist_id", playlistID.String()),
			slog.String("song_id", songID.String()))
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected", slog.String("error", err.Error()))
		return MapError(err)
	}

	if rowsAffected == 0 {
		log.Debug("membership not found for delete",
			slog.String("playlist_id", playlistID.String()),
			slog.String("song_id", songID.String()))
		return store.ErrMembershipNotFound
	}

	log.Info("song removed from playlist",
		slog.String("playlist_id", playlistID.String()),
		slog.String("song_id", songID.String()))
	return nil
}

// ListSongs implements store.MembershipStore.ListSongs
// Songs are returned in the order they were added to the playlist.
func (s *MembershipStore) ListSongs(ctx context.Context, playlistID uuid.UUID) ([]*store.PlaylistSong, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT s.id, s.title, s.artist, s.duration_seconds, ps.added_at
		FROM playlist_songs ps
		JOIN songs s ON s.id = ps.song_id
		WHERE ps.playlist_id = $1
		ORDER BY ps.added_at, s.title
	`

	rows, err := s.db.QueryContext(ctx, query, playlistID)
	if err != nil {
		log.Error("failed to list playlist songs",
			slog.String("error", err.Error()),
			slog.String("playlist_id", playlistID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var songs []*store.PlaylistSong
	for rows.Next() {
		var song store.PlaylistSong
		if err := rows.Scan(&song.SongID, &song.Title, &song.Artist, &song.DurationSeconds, &song.AddedAt); err != nil {
			log.Error("failed to scan playlist song row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		songs = append(songs, &song)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if songs == nil {
		songs = []*store.PlaylistSong{}
	}

	return songs, nil
}

// Exists implements store.MembershipStore.Exists
func (s *MembershipStore) Exists(ctx context.Context, playlistID, songID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM playlist_songs
			WHERE playlist_id = $1 AND song_id = $2
		)
	`

	var exists bool
	err := s.db.QueryRowContext(ctx, query, playlistID, songID).Scan(&exists)
	if err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// WithTx implements store.MembershipStore.WithTx
func (s *MembershipStore) WithTx(tx *sql.Tx) store.MembershipStore {
	return &MembershipStore{
		db:     tx,
		logger: s.logger,
	}
}
