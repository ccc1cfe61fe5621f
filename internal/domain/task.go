package domain

import (
	"time"
)

// StatusPending is the status every task starts in. Other statuses are
// application-defined free strings supplied by the worker bots (for
// example "running" or "done"); the gateway deliberately does not
// enforce a closed set or a transition machine, matching the behavior
// the bots already depend on.
const StatusPending = "pending"

// DefaultPriority is assigned when a task is enqueued without an
// explicit priority. Higher values sort first.
const DefaultPriority = 1

// Task is a unit of work tracked for processing by an external worker
// bot. The store assigns ID and CreatedAt on insert; both are immutable
// afterwards. Status is mutated only through explicit status updates and
// FastInterval only through the mark-intensive operation.
type Task struct {
	ID           int64     `json:"task_id"`
	TaskType     string    `json:"task_type"`
	Status       string    `json:"status"`
	AssignedTo   string    `json:"assigned_to"`
	Priority     int       `json:"priority"`
	Details      string    `json:"details"`
	FastInterval bool      `json:"fast_interval"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewTask creates a pending Task with the given type, assignee, priority
// and details. A non-positive priority falls back to DefaultPriority.
// Returns a validation error when taskType or assignedTo is empty.
func NewTask(taskType, assignedTo string, priority int, details string) (*Task, error) {
	if priority <= 0 {
		priority = DefaultPriority
	}

	task := &Task{
		TaskType:     taskType,
		Status:       StatusPending,
		AssignedTo:   assignedTo,
		Priority:     priority,
		Details:      details,
		FastInterval: false,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks that the Task carries the fields required for
// persistence. Returns a domain validation error on the first violation.
func (t *Task) Validate() error {
	if t.TaskType == "" {
		return ErrEmptyTaskType
	}
	if t.AssignedTo == "" {
		return ErrEmptyAssignedTo
	}
	if t.Status == "" {
		return ErrEmptyStatus
	}
	return nil
}
