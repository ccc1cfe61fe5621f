package store

import (
	"context"

	"github.com/Ralle1976/botcrafter/internal/domain"
)

// TaskFilter selects tasks by status equality and, optionally, by the
// fast_interval flag. A nil FastInterval leaves the flag unconstrained.
type TaskFilter struct {
	Status       string
	FastInterval *bool
}

// PendingFilter returns the filter used by the pending-task listing.
func PendingFilter() TaskFilter {
	return TaskFilter{Status: domain.StatusPending}
}

// HighPriorityFilter returns the filter used by the high-priority
// listing: pending tasks flagged for fast-interval polling.
func HighPriorityFilter() TaskFilter {
	fast := true
	return TaskFilter{Status: domain.StatusPending, FastInterval: &fast}
}

// TaskStore defines the interface for task persistence. Every method
// executes exactly one statement against the backing pool; ordering and
// locking guarantees come from the relational backend alone.
type TaskStore interface {
	// CreateTask inserts a new task and returns the store-assigned ID.
	// The store assigns CreatedAt; IDs are monotonically increasing and
	// never reused.
	CreateTask(ctx context.Context, task *domain.Task) (int64, error)

	// FindTasks returns all tasks matching the filter, ordered by
	// priority descending then created_at ascending. Returns an empty
	// slice, not an error, when nothing matches.
	FindTasks(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)

	// UpdateStatus sets the status of the task with the given ID.
	// Returns ErrTaskNotFound when no row was affected.
	UpdateStatus(ctx context.Context, id int64, status string) error

	// MarkFastInterval flags the task with the given ID for fast-interval
	// polling. Idempotent. Returns ErrTaskNotFound when no row was affected.
	MarkFastInterval(ctx context.Context, id int64) error
}

// EventLogStore defines the interface for the append-only event log.
// There is deliberately no update or delete operation.
type EventLogStore interface {
	// CreateLogEvent appends an event and returns the store-assigned ID.
	// The store assigns LoggedAt.
	CreateLogEvent(ctx context.Context, event *domain.LogEvent) (int64, error)

	// FindRecentLogEvents returns at most limit events, newest logged_at
	// first.
	FindRecentLogEvents(ctx context.Context, limit int) ([]*domain.LogEvent, error)
}

// SchemaStore is implemented by stores that own their schema and can
// create it idempotently at startup or via the admin API.
type SchemaStore interface {
	// EnsureSchema creates the backing tables if they do not exist.
	// Safe to call repeatedly.
	EnsureSchema(ctx context.Context) error
}
