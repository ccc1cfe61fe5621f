package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/Ralle1976/botcrafter/internal/platform/logger"
	"github.com/Ralle1976/botcrafter/internal/store"
	"github.com/jackc/pgx/v5"
)

// PostgresAdminStore implements store.AdminStore. Table and column names
// supplied by the operator are quoted with pgx.Identifier before being
// interpolated into the statement text; values travel as bind parameters.
// This mirrors the generic pass-through the original gateway exposed and
// is documented as a trust boundary, not hardened beyond quoting.
type PostgresAdminStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAdminStore creates a new PostgreSQL implementation of the
// AdminStore interface. If logger is nil, the default logger is used.
func NewPostgresAdminStore(db store.DBTX, logger *slog.Logger) *PostgresAdminStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAdminStore{
		db:     db,
		logger: logger.With(slog.String("component", "admin_store")),
	}
}

// Ensure PostgresAdminStore implements store.AdminStore
var _ store.AdminStore = (*PostgresAdminStore)(nil)

// InsertRow implements store.AdminStore.InsertRow.
// Columns are ordered deterministically so the generated statement is
// stable for a given input.
func (s *PostgresAdminStore) InsertRow(
	ctx context.Context,
	table string,
	values map[string]any,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if table == "" || len(values) == 0 {
		return fmt.Errorf("%w: table and values are required", store.ErrInvalidEntity)
	}

	columns := make([]string, 0, len(values))
	for column := range values {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, column := range columns {
		quoted[i] = pgx.Identifier{column}.Sanitize()
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = values[column]
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		pgx.Identifier{table}.Sanitize(),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
	)

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to insert row",
			slog.String("table", table),
			slog.String("error", err.Error()))
		return store.NewStoreError(table, "insert", "insert failed", MapError(err))
	}

	log.Debug("row inserted", slog.String("table", table), slog.Int("columns", len(columns)))
	return nil
}

// SelectRows implements store.AdminStore.SelectRows.
func (s *PostgresAdminStore) SelectRows(
	ctx context.Context,
	table string,
) ([]map[string]any, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if table == "" {
		return nil, fmt.Errorf("%w: table is required", store.ErrInvalidEntity)
	}

	query := fmt.Sprintf("SELECT * FROM %s", pgx.Identifier{table}.Sanitize())

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to select rows",
			slog.String("table", table),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError(table, "select", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, store.NewStoreError(table, "select", "column lookup failed", MapError(err))
	}

	result := make([]map[string]any, 0)
	for rows.Next() {
		cells := make([]any, len(columns))
		for i := range cells {
			cells[i] = new(any)
		}
		if err := rows.Scan(cells...); err != nil {
			log.Error("failed to scan row", slog.String("error", err.Error()))
			return nil, store.NewStoreError(table, "select", "scan failed", MapError(err))
		}

		row := make(map[string]any, len(columns))
		for i, column := range columns {
			value := *(cells[i].(*any))
			// []byte cells would serialize as base64 in the JSON
			// response; render them as text instead.
			if b, ok := value.([]byte); ok {
				value = string(b)
			}
			row[column] = value
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError(table, "select", "row iteration failed", MapError(err))
	}

	return result, nil
}
