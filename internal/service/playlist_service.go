package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/davmoren/tunebase/internal/domain"
	"github.com/davmoren/tunebase/internal/platform/logger"
	"github.com/davmoren/tunebase/internal/store"
	"github.com/google/uuid"
)

// PlaylistServiceError is a custom error type for playlist service errors.
type PlaylistServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for PlaylistServiceError.
func (e *PlaylistServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("playlist service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("playlist service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PlaylistServiceError) Unwrap() error {
	return e.Err
}

// NewPlaylistServiceError creates a new PlaylistServiceError.
func NewPlaylistServiceError(operation, message string, err error) *PlaylistServiceError {
	return &PlaylistServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// PlaylistWithSongs is a playlist together with its ordered member songs.
type PlaylistWithSongs struct {
	domain.Playlist
	Songs []*store.PlaylistSong
}

// SongCount returns the number of member songs.
func (p *PlaylistWithSongs) SongCount() int {
	return len(p.Songs)
}

// PlaylistDetail is the full view of one playlist: owner identity, ordered
// member songs and the summed duration in seconds (0 when empty).
type PlaylistDetail struct {
	domain.Playlist
	OwnerName            string
	OwnerEmail           string
	Songs                []*store.PlaylistSong
	TotalDurationSeconds int
}

// PlaylistService provides playlist-related operations
type PlaylistService interface {
	// CreatePlaylist creates a new playlist owned by the given user.
	// Returns store.ErrUserNotFound if the user does not exist and a domain
	// validation error if the name is empty or too long.
	CreatePlaylist(ctx context.Context, userID uuid.UUID, name string) (*domain.Playlist, error)

	// AddSong adds the given song to the given playlist.
	// Returns store.ErrPlaylistNotFound / store.ErrSongNotFound if either
	// side is missing and store.ErrDuplicateMembership if the song is already
	// in the playlist.
	AddSong(ctx context.Context, playlistID, songID uuid.UUID) (*domain.Membership, error)

	// RemoveSong removes the given song from the given playlist.
	// Returns store.ErrMembershipNotFound if the song is not in the playlist.
	RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) error

	// GetUserPlaylists retrieves all playlists of the given user, each with
	// its member songs in insertion order.
	// Returns store.ErrUserNotFound if the user does not exist.
	GetUserPlaylists(ctx context.Context, userID uuid.UUID) ([]*PlaylistWithSongs, error)

	// GetPlaylistDetail retrieves one playlist with owner identity, member
	// songs in insertion order and the summed duration.
	// Returns store.ErrPlaylistNotFound if the playlist does not exist.
	GetPlaylistDetail(ctx context.Context, playlistID uuid.UUID) (*PlaylistDetail, error)
}

// playlistServiceImpl implements the PlaylistService interface
type playlistServiceImpl struct {
	userStore       store.UserStore
	songStore       store.SongStore
	playlistStore   store.PlaylistStore
	membershipStore store.MembershipStore
	logger          *slog.Logger
}

// NewPlaylistService creates a new PlaylistService.
// It returns an error if any of the required dependencies are nil.
func NewPlaylistService(
	userStore store.UserStore,
	songStore store.SongStore,
	playlistStore store.PlaylistStore,
	membershipStore store.MembershipStore,
	logger *slog.Logger,
) (PlaylistService, error) {
	if userStore == nil {
		return nil, domain.NewValidationError("userStore", "cannot be nil", domain.ErrValidation)
	}
	if songStore == nil {
		return nil, domain.NewValidationError("songStore", "cannot be nil", domain.ErrValidation)
	}
	if playlistStore == nil {
		return nil, domain.NewValidationError("playlistStore", "cannot be nil", domain.ErrValidation)
	}
	if membershipStore == nil {
		return nil, domain.NewValidationError("membershipStore", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &playlistServiceImpl{
		userStore:       userStore,
		songStore:       songStore,
		playlistStore:   playlistStore,
		membershipStore: membershipStore,
		logger:          logger.With(slog.String("component", "playlist_service")),
	}, nil
}

// CreatePlaylist implements PlaylistService.CreatePlaylist
func (s *playlistServiceImpl) CreatePlaylist(
	ctx context.Context,
	userID uuid.UUID,
	name string,
) (*domain.Playlist, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		log.Error("failed to look up playlist owner",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewPlaylistServiceError("create_playlist", "failed to look up owner", err)
	}

	playlist, err := domain.NewPlaylist(userID, name)
	if err != nil {
		return nil, err
	}

	if err := s.playlistStore.Create(ctx, playlist); err != nil {
		log.Error("failed to create playlist",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewPlaylistServiceError("create_playlist", "failed to save playlist", err)
	}

	log.Info("playlist created",
		slog.String("playlist_id", playlist.ID.String()),
		slog.String("user_id", userID.String()))
	return playlist, nil
}

// AddSong implements PlaylistService.AddSong
// The (playlist, song) unique constraint is authoritative under concurrency;
// the store surfaces its violation as store.ErrDuplicateMembership.
func (s *playlistServiceImpl) AddSong(
	ctx context.Context,
	playlistID, songID uuid.UUID,
) (*domain.Membership, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.playlistStore.GetByID(ctx, playlistID); err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, NewPlaylistServiceError("add_song", "failed to look up playlist", err)
	}
	if _, err := s.songStore.GetByID(ctx, songID); err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, NewPlaylistServiceError("add_song", "failed to look up song", err)
	}

	// Cheap pre-check; the unique constraint stays authoritative when two
	// adds race past it.
	exists, err := s.membershipStore.Exists(ctx, playlistID, songID)
	if err != nil {
		return nil, NewPlaylistServiceError("add_song", "failed to check membership", err)
	}
	if exists {
		return nil, store.ErrDuplicateMembership
	}

	membership, err := domain.NewMembership(playlistID, songID)
	if err != nil {
		return nil, err
	}

	if err := s.membershipStore.Create(ctx, membership); err != nil {
		if store.IsDuplicateError(err) || store.IsNotFoundError(err) {
			return nil, err
		}
		log.Error("failed to add song to playlist",
			slog.String("error", err.Error()),
			slog.String("playlist_id", playlistID.String()),
			slog.String("song_id", songID.String()))
		return nil, NewPlaylistServiceError("add_song", "failed to save membership", err)
	}

	log.Info("song added to playlist",
		slog.String("playlist_id", playlistID.String()),
		slog.String("song_id", songID.String()))
	return membership, nil
}

// RemoveSong implements PlaylistService.RemoveSong
func (s *playlistServiceImpl) RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.membershipStore.Delete(ctx, playlistID, songID); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		log.Error("failed to remove song from playlist",
			slog.String("error", err.Error()),
			slog.String("playlist_id", playlistID.String()),
			slog.String("song_id", songID.String()))
		return NewPlaylistServiceError("remove_song", "failed to delete membership", err)
	}

	log.Info("song removed from playlist",
		slog.String("playlist_id", playlistID.String()),
		slog.String("song_id", songID.String()))
	return nil
}

// GetUserPlaylists implements PlaylistService.GetUserPlaylists
func (s *playlistServiceImpl) GetUserPlaylists(
	ctx context.Context,
	userID uuid.UUID,
) ([]*PlaylistWithSongs, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, NewPlaylistServiceError("get_user_playlists", "failed to look up user", err)
	}

	playlists, err := s.playlistStore.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to list playlists",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewPlaylistServiceError("get_user_playlists", "failed to list playlists", err)
	}

	result := make([]*PlaylistWithSongs, 0, len(playlists))
	for _, playlist := range playlists {
		songs, err := s.membershipStore.ListSongs(ctx, playlist.ID)
		if err != nil {
			log.Error("failed to list playlist songs",
				slog.String("error", err.Error()),
				slog.String("playlist_id", playlist.ID.String()))
			return nil, NewPlaylistServiceError("get_user_playlists", "failed to list playlist songs", err)
		}
		result = append(result, &PlaylistWithSongs{
			Playlist: *playlist,
			Songs:    songs,
		})
	}

	return result, nil
}

// GetPlaylistDetail implements PlaylistService.GetPlaylistDetail
func (s *playlistServiceImpl) GetPlaylistDetail(
	ctx context.Context,
	playlistID uuid.UUID,
) (*PlaylistDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	playlist, err := s.playlistStore.GetByID(ctx, playlistID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, NewPlaylistServiceError("get_playlist_detail", "failed to look up playlist", err)
	}

	owner, err := s.userStore.GetByID(ctx, playlist.UserID)
	if err != nil {
		log.Error("failed to look up playlist owner",
			slog.String("error", err.Error()),
			slog.String("playlist_id", playlistID.String()),
			slog.String("user_id", playlist.UserID.String()))
		return nil, NewPlaylistServiceError("get_playlist_detail", "failed to look up owner", err)
	}

	songs, err := s.membershipStore.ListSongs(ctx, playlistID)
	if err != nil {
		log.Error("failed to list playlist songs",
			slog.String("error", err.Error()),
			slog.String("playlist_id", playlistID.String()))
		return nil, NewPlaylistServiceError("get_playlist_detail", "failed to list playlist songs", err)
	}

	total := 0
	for _, song := range songs {
		total += song.DurationSeconds
	}

	return &PlaylistDetail{
		Playlist:             *playlist,
		OwnerName:            owner.Name,
		OwnerEmail:           owner.Email,
		Songs:                songs,
		TotalDurationSeconds: total,
	}, nil
}
