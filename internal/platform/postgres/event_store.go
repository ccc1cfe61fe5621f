package postgres

import (
	"context"
	"log/slog"

	"github.com/Ralle1976/botcrafter/internal/domain"
	"github.com/Ralle1976/botcrafter/internal/platform/logger"
	"github.com/Ralle1976/botcrafter/internal/store"
)

// PostgresEventLogStore implements the store.EventLogStore interface
// using PostgreSQL. The logs table is append-only: no update or delete
// statement exists anywhere in this package.
type PostgresEventLogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresEventLogStore creates a new PostgreSQL implementation of the
// EventLogStore interface. If logger is nil, the default logger is used.
func NewPostgresEventLogStore(db store.DBTX, logger *slog.Logger) *PostgresEventLogStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresEventLogStore{
		db:     db,
		logger: logger.With(slog.String("component", "event_log_store")),
	}
}

// Ensure PostgresEventLogStore implements store.EventLogStore
var _ store.EventLogStore = (*PostgresEventLogStore)(nil)

// CreateLogEvent implements store.EventLogStore.CreateLogEvent.
func (s *PostgresEventLogStore) CreateLogEvent(
	ctx context.Context,
	event *domain.LogEvent,
) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := event.Validate(); err != nil {
		log.Warn("log event validation failed during create",
			slog.String("error", err.Error()),
			slog.String("event_type", event.EventType))
		return 0, err
	}

	query := `
		INSERT INTO logs (event_type, details)
		VALUES ($1, $2)
		RETURNING id, logged_at
	`

	err := s.db.QueryRowContext(ctx, query, event.EventType, event.Details).
		Scan(&event.ID, &event.LoggedAt)
	if err != nil {
		log.Error("failed to create log event",
			slog.String("event_type", event.EventType),
			slog.String("error", err.Error()))
		return 0, store.NewStoreError("log_event", "create", "insert failed", MapError(err))
	}

	return event.ID, nil
}

// FindRecentLogEvents implements store.EventLogStore.FindRecentLogEvents.
func (s *PostgresEventLogStore) FindRecentLogEvents(
	ctx context.Context,
	limit int,
) ([]*domain.LogEvent, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, event_type, details, logged_at
		FROM logs
		ORDER BY logged_at DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		log.Error("failed to query log events",
			slog.Int("limit", limit),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("log_event", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	events := make([]*domain.LogEvent, 0)
	for rows.Next() {
		var event domain.LogEvent
		if err := rows.Scan(&event.ID, &event.EventType, &event.Details, &event.LoggedAt); err != nil {
			log.Error("failed to scan log event row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("log_event", "list", "scan failed", MapError(err))
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating log event rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("log_event", "list", "row iteration failed", MapError(err))
	}

	return events, nil
}
