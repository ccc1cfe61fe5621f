package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Ralle1976/botcrafter/internal/config"
	"github.com/Ralle1976/botcrafter/internal/events"
	"github.com/Ralle1976/botcrafter/internal/platform/postgres"
	"github.com/Ralle1976/botcrafter/internal/service"
	"github.com/Ralle1976/botcrafter/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	taskStore  store.TaskStore
	eventLog   store.EventLogStore
	adminStore store.AdminStore
	schema     store.SchemaStore

	// Services
	taskService  *service.TaskService
	eventService *service.EventService

	// Event system
	eventEmitter events.EventEmitter
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts the core dependencies that must be established
// before application wiring: configuration, logger and database handle.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize stores
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)
	app.eventLog = postgres.NewPostgresEventLogStore(db, logger)
	app.adminStore = postgres.NewPostgresAdminStore(db, logger)
	app.schema = postgres.NewSchema(db, logger)

	// Ensure the tasks and logs tables exist before serving traffic.
	// Also reachable on demand via GET /init-db.
	if err := app.schema.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	// Initialize event emitter and register the log recorder so every
	// task mutation lands in the logs table.
	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewLogRecorder(app.eventLog, logger))
	app.eventEmitter = emitter

	// Initialize services
	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	app.eventService, err = service.NewEventService(app.eventLog, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create event service: %w", err)
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
