package api

import (
	"context"

	"github.com/davmoren/tunebase/internal/domain"
	"github.com/davmoren/tunebase/internal/service"
	"github.com/davmoren/tunebase/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// mockCatalogService is a testify mock for service.CatalogService.
type mockCatalogService struct {
	mock.Mock
}

func (m *mockCatalogService) ListSongs(ctx context.Context) ([]*domain.Song, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Song), args.Error(1)
}

func (m *mockCatalogService) GetSong(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

func (m *mockCatalogService) SearchSongs(
	ctx context.Context,
	artist, title string,
) ([]*domain.Song, error) {
	args := m.Called(ctx, artist, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Song), args.Error(1)
}

// mockPlaylistService is a testify mock for service.PlaylistService.
type mockPlaylistService struct {
	mock.Mock
}

func (m *mockPlaylistService) CreatePlaylist(
	ctx context.Context,
	userID uuid.UUID,
	name string,
) (*domain.Playlist, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *mockPlaylistService) AddSong(
	ctx context.Context,
	playlistID, songID uuid.UUID,
) (*domain.Membership, error) {
	args := m.Called(ctx, playlistID, songID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}

func (m *mockPlaylistService) RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) error {
	args := m.Called(ctx, playlistID, songID)
	return args.Error(0)
}

func (m *mockPlaylistService) GetUserPlaylists(
	ctx context.Context,
	userID uuid.UUID,
) ([]*service.PlaylistWithSongs, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*service.PlaylistWithSongs), args.Error(1)
}

func (m *mockPlaylistService) GetPlaylistDetail(
	ctx context.Context,
	playlistID uuid.UUID,
) (*service.PlaylistDetail, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PlaylistDetail), args.Error(1)
}

// mockSubscriptionService is a testify mock for service.SubscriptionService.
type mockSubscriptionService struct {
	mock.Mock
}

func (m *mockSubscriptionService) CreateOrRenew(
	ctx context.Context,
	userID uuid.UUID,
	plan domain.PlanType,
) (*domain.Subscription, error) {
	args := m.Called(ctx, userID, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *mockSubscriptionService) Cancel(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *mockSubscriptionService) GetActiveSubscription(
	ctx context.Context,
	userID uuid.UUID,
) (*store.ActiveSubscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.ActiveSubscription), args.Error(1)
}

func (m *mockSubscriptionService) ListPlans(ctx context.Context) []service.Plan {
	m.Called(ctx)
	return service.AvailablePlans()
}
