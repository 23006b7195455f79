// Package main implements the entry point for the tunebase server,
// a music catalog backend handling songs, playlists, subscriptions
// and catalog reports.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/davmoren/tunebase/internal/config"
	"github.com/davmoren/tunebase/internal/platform/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	ctx := context.Background()

	app, err := initializeApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		app.logger.Error("Server exited with error", "error", err)
		app.cleanup()
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, connects to the
// database, runs pending migrations and wires the application components.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(logger.Config{Level: cfg.Server.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	if err := runMigrations(ctx, db, appLogger); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}

	return app, nil
}
