package postgres

import (
	"context"
	"log/slog"

	"github.com/Ralle1976/botcrafter/internal/domain"
	"github.com/Ralle1976/botcrafter/internal/platform/logger"
	"github.com/Ralle1976/botcrafter/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface using
// PostgreSQL. Every method issues exactly one statement; connection
// acquisition and release are handled by the *sql.DB pool behind the
// DBTX.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction
// managed by the caller. If logger is nil, the default logger is used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// CreateTask implements store.TaskStore.CreateTask.
// The database assigns task_id and created_at; both are written back into
// the given task before the ID is returned.
func (s *PostgresTaskStore) CreateTask(ctx context.Context, task *domain.Task) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("task_type", task.TaskType))
		return 0, err
	}

	query := `
		INSERT INTO tasks (task_type, status, assigned_to, priority, details, fast_interval)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING task_id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		task.TaskType,
		task.Status,
		task.AssignedTo,
		task.Priority,
		task.Details,
		task.FastInterval,
	).Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		log.Error("failed to create task",
			slog.String("task_type", task.TaskType),
			slog.String("assigned_to", task.AssignedTo),
			slog.String("error", err.Error()))
		return 0, store.NewStoreError("task", "create", "insert failed", MapError(err))
	}

	log.Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.String("task_type", task.TaskType),
		slog.Int("priority", task.Priority))

	return task.ID, nil
}

// FindTasks implements store.TaskStore.FindTasks.
// Results are ordered by priority descending, then created_at ascending,
// so higher-priority tasks come first and equal priorities are served
// oldest first.
func (s *PostgresTaskStore) FindTasks(
	ctx context.Context,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT task_id, task_type, status, assigned_to, priority, details, fast_interval, created_at
		FROM tasks
		WHERE status = $1
	`
	args := []any{filter.Status}

	if filter.FastInterval != nil {
		query += ` AND fast_interval = $2`
		args = append(args, *filter.FastInterval)
	}

	query += ` ORDER BY priority DESC, created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query tasks",
			slog.String("status", filter.Status),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID,
			&task.TaskType,
			&task.Status,
			&task.AssignedTo,
			&task.Priority,
			&task.Details,
			&task.FastInterval,
			&task.CreatedAt,
		); err != nil {
			log.Error("failed to scan task row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("task", "list", "scan failed", MapError(err))
		}
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating task rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "list", "row iteration failed", MapError(err))
	}

	return tasks, nil
}

// UpdateStatus implements store.TaskStore.UpdateStatus.
// Returns store.ErrTaskNotFound when the ID does not match any row.
// Concurrent updates on the same row resolve last-write-wins at the
// database.
func (s *PostgresTaskStore) UpdateStatus(ctx context.Context, id int64, status string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `UPDATE tasks SET status = $1 WHERE task_id = $2`

	result, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		log.Error("failed to update task status",
			slog.Int64("task_id", id),
			slog.String("status", status),
			slog.String("error", err.Error()))
		return store.NewStoreError("task", "update_status", "update failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		log.Warn("no task found to update status", slog.Int64("task_id", id))
		return err
	}

	return nil
}

// MarkFastInterval implements store.TaskStore.MarkFastInterval.
// Setting the flag on an already flagged task is a no-op update, so the
// operation is idempotent. Returns store.ErrTaskNotFound when the ID does
// not match any row.
func (s *PostgresTaskStore) MarkFastInterval(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `UPDATE tasks SET fast_interval = TRUE WHERE task_id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to mark task fast interval",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return store.NewStoreError("task", "mark_fast_interval", "update failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		log.Warn("no task found to mark fast interval", slog.Int64("task_id", id))
		return err
	}

	return nil
}
