// Package main implements the entry point for the botcrafter gateway,
// the HTTP-to-SQL service the worker bots use to pull tasks from and
// push events into the shared Postgres database.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/Ralle1976/botcrafter/internal/config"
	"github.com/Ralle1976/botcrafter/internal/platform/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start gateway: %v", err)
	}
}

// run loads configuration, wires the application and blocks until the
// server shuts down. Split out of main so initialization errors flow
// through a single exit path.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Gateway configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	ctx := context.Background()

	db, err := setupAppDatabase(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		// newApplication hands ownership of db to app only on success.
		if closeErr := db.Close(); closeErr != nil {
			appLogger.Error("Error closing database connection", "error", closeErr)
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
