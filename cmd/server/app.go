package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/davmoren/tunebase/internal/config"
	"github.com/davmoren/tunebase/internal/platform/postgres"
	"github.com/davmoren/tunebase/internal/report"
	"github.com/davmoren/tunebase/internal/service"
	"github.com/davmoren/tunebase/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore       store.UserStore
	songStore       store.SongStore
	playlistStore   store.PlaylistStore
	membershipStore store.MembershipStore
	subStore        store.SubscriptionStore
	reportStore     store.ReportStore

	// Service interfaces
	catalogService      service.CatalogService
	playlistService     service.PlaylistService
	subscriptionService service.SubscriptionService

	// Report engine
	reportEngine *report.Engine
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize stores
	app.userStore = postgres.NewUserStore(db, logger)
	app.songStore = postgres.NewSongStore(db, logger)
	app.playlistStore = postgres.NewPlaylistStore(db, logger)
	app.membershipStore = postgres.NewMembershipStore(db, logger)
	app.subStore = postgres.NewSubscriptionStore(db, logger)
	app.reportStore = postgres.NewReportStore(db, logger)

	// Initialize services
	var err error
	app.catalogService, err = service.NewCatalogService(app.songStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	app.playlistService, err = service.NewPlaylistService(
		app.userStore,
		app.songStore,
		app.playlistStore,
		app.membershipStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create playlist service: %w", err)
	}

	app.subscriptionService, err = service.NewSubscriptionService(
		db,
		app.userStore,
		app.subStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription service: %w", err)
	}

	app.reportEngine, err = report.NewEngine(app.reportStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create report engine: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
