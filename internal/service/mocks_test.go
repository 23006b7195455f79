package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/davmoren/tunebase/internal/domain"
	"github.com/davmoren/tunebase/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// mockUserStore is a testify mock for store.UserStore.
type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// mockSongStore is a testify mock for store.SongStore.
type mockSongStore struct {
	mock.Mock
}

func (m *mockSongStore) Create(ctx context.Context, song *domain.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *mockSongStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

func (m *mockSongStore) List(ctx context.Context) ([]*domain.Song, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Song), args.Error(1)
}

func (m *mockSongStore) Search(ctx context.Context, artist, title string) ([]*domain.Song, error) {
	args := m.Called(ctx, artist, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Song), args.Error(1)
}

func (m *mockSongStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockSongStore) WithTx(tx *sql.Tx) store.SongStore {
	return m
}

// mockSubscriptionStore is a testify mock for store.SubscriptionStore.
type mockSubscriptionStore struct {
	mock.Mock
}

func (m *mockSubscriptionStore) Create(ctx context.Context, sub *domain.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockSubscriptionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *mockSubscriptionStore) GetActiveByUserForUpdate(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *mockSubscriptionStore) GetActiveWithOwner(
	ctx context.Context,
	userID uuid.UUID,
) (*store.ActiveSubscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.ActiveSubscription), args.Error(1)
}

func (m *mockSubscriptionStore) Update(ctx context.Context, sub *domain.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockSubscriptionStore) WithTx(tx *sql.Tx) store.SubscriptionStore {
	return m
}

// mockPlaylistStore is a testify mock for store.PlaylistStore.
type mockPlaylistStore struct {
	mock.Mock
}

func (m *mockPlaylistStore) Create(ctx context.Context, playlist *domain.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *mockPlaylistStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *mockPlaylistStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Playlist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Playlist), args.Error(1)
}

func (m *mockPlaylistStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockPlaylistStore) WithTx(tx *sql.Tx) store.PlaylistStore {
	return m
}

// mockMembershipStore is a testify mock for store.MembershipStore.
type mockMembershipStore struct {
	mock.Mock
}

func (m *mockMembershipStore) Create(ctx context.Context, membership *domain.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *mockMembershipStore) Delete(ctx context.Context, playlistID, songID uuid.UUID) error {
	args := m.Called(ctx, playlistID, songID)
	return args.Error(0)
}

func (m *mockMembershipStore) ListSongs(
	ctx context.Context,
	playlistID uuid.UUID,
) ([]*store.PlaylistSong, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.PlaylistSong), args.Error(1)
}

func (m *mockMembershipStore) Exists(ctx context.Context, playlistID, songID uuid.UUID) (bool, error) {
	args := m.Called(ctx, playlistID, songID)
	return args.Bool(0), args.Error(1)
}

func (m *mockMembershipStore) WithTx(tx *sql.Tx) store.MembershipStore {
	return m
}

// testUser builds a valid user for tests.
func testUser() *domain.User {
	return &domain.User{
		ID:    uuid.New(),
		Email: "listener@example.com",
		Name:  "Listener",
	}
}

// testSong builds a valid song for tests.
func testSong(title, artist string, duration int) *domain.Song {
	return &domain.Song{
		ID:              uuid.New(),
		Title:           title,
		Artist:          artist,
		DurationSeconds: duration,
	}
}

// testPlaylist builds a valid playlist for tests.
func testPlaylist(userID uuid.UUID, name string) *domain.Playlist {
	return &domain.Playlist{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}
