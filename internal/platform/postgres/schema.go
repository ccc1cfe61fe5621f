package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Ralle1976/botcrafter/internal/platform/logger"
	"github.com/Ralle1976/botcrafter/internal/store"
)

// Schema owns creation of the tasks and logs tables. Both statements use
// CREATE TABLE IF NOT EXISTS, so EnsureSchema is safe to run on every
// startup and via the /init-db admin endpoint.
type Schema struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewSchema creates a Schema bound to the given database handle.
// If logger is nil, the default logger is used.
func NewSchema(db store.DBTX, logger *slog.Logger) *Schema {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Schema{
		db:     db,
		logger: logger.With(slog.String("component", "schema")),
	}
}

// Ensure Schema implements store.SchemaStore
var _ store.SchemaStore = (*Schema)(nil)

// schemaStatements are executed in order by EnsureSchema. Column defaults
// mirror the domain defaults so rows inserted outside the gateway (via the
// admin endpoints) still come out well formed.
var schemaStatements = []struct {
	table string
	ddl   string
}{
	{
		table: "tasks",
		ddl: `
			CREATE TABLE IF NOT EXISTS tasks (
				task_id       BIGSERIAL PRIMARY KEY,
				task_type     TEXT NOT NULL,
				status        TEXT NOT NULL DEFAULT 'pending',
				assigned_to   TEXT NOT NULL,
				priority      INTEGER NOT NULL DEFAULT 1,
				details       TEXT NOT NULL DEFAULT '',
				fast_interval BOOLEAN NOT NULL DEFAULT FALSE,
				created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
			)
		`,
	},
	{
		table: "logs",
		ddl: `
			CREATE TABLE IF NOT EXISTS logs (
				id         BIGSERIAL PRIMARY KEY,
				event_type TEXT NOT NULL,
				details    TEXT NOT NULL,
				logged_at  TIMESTAMPTZ NOT NULL DEFAULT now()
			)
		`,
	},
}

// EnsureSchema implements store.SchemaStore.EnsureSchema.
func (s *Schema) EnsureSchema(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt.ddl); err != nil {
			log.Error("failed to ensure table",
				slog.String("table", stmt.table),
				slog.String("error", err.Error()))
			return fmt.Errorf("%w: table %s: %v", store.ErrSchema, stmt.table, err)
		}
		log.Debug("table ensured", slog.String("table", stmt.table))
	}

	return nil
}
