package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/davmoren/tunebase/internal/api"
	apiMiddleware "github.com/davmoren/tunebase/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	catalogHandler := api.NewCatalogHandler(app.catalogService, app.logger)
	playlistHandler := api.NewPlaylistHandler(app.playlistService, app.logger)
	subscriptionHandler := api.NewSubscriptionHandler(app.subscriptionService, app.logger)
	reportHandler := api.NewReportHandler(app.reportEngine, app.logger)
	healthHandler := api.NewHealthHandler(app.userStore, app.songStore, app.logger)

	// Catalog endpoints
	r.Get("/songs", catalogHandler.ListSongs)
	r.Get("/songs/{id}", catalogHandler.GetSong)

	// Playlist endpoints
	r.Post("/playlists", playlistHandler.CreatePlaylist)
	r.Get("/playlists/{id}", playlistHandler.GetPlaylistDetail)
	r.Post("/playlists/{id}/songs", playlistHandler.AddSong)
	r.Delete("/playlists/{id}/songs/{songID}", playlistHandler.RemoveSong)
	r.Get("/users/{id}/playlists", playlistHandler.GetUserPlaylists)

	// Subscription endpoints
	r.Get("/plans", subscriptionHandler.ListPlans)
	r.Post("/subscriptions", subscriptionHandler.Subscribe)
	r.Post("/subscriptions/{id}/cancel", subscriptionHandler.Cancel)
	r.Get("/users/{id}/subscription", subscriptionHandler.GetActiveSubscription)

	// Report endpoints
	r.Get("/reports/subscriptions", reportHandler.SubscriptionReport)
	r.Get("/reports/usage", reportHandler.UsageReport)
	r.Get("/reports/user-activity", reportHandler.UserActivityReport)

	// Health check endpoints
	r.Get("/health", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	return r
}
