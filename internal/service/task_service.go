package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Ralle1976/botcrafter/internal/domain"
	"github.com/Ralle1976/botcrafter/internal/events"
	"github.com/Ralle1976/botcrafter/internal/store"
)

// TaskService provides the task-queue operations consumed by the
// transport layer. It validates input before delegating to the store and
// emits a domain event after every successful mutation. Event emission is
// best-effort: failures are logged and never surfaced to the caller.
type TaskService struct {
	tasks   store.TaskStore
	emitter events.EventEmitter
	logger  *slog.Logger
}

// NewTaskService creates a new TaskService with the given dependencies.
func NewTaskService(
	tasks store.TaskStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (*TaskService, error) {
	if tasks == nil {
		return nil, errors.New("task store cannot be nil")
	}
	if emitter == nil {
		return nil, errors.New("event emitter cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskService{
		tasks:   tasks,
		emitter: emitter,
		logger:  logger.With(slog.String("component", "task_service")),
	}, nil
}

// Enqueue creates a new pending task. A non-positive priority falls back
// to domain.DefaultPriority and details may be empty. Returns a domain
// validation error when taskType or assignedTo is empty; no row is
// created in that case.
func (s *TaskService) Enqueue(
	ctx context.Context,
	taskType, assignedTo string,
	priority int,
	details string,
) (*domain.Task, error) {
	task, err := domain.NewTask(taskType, assignedTo, priority, details)
	if err != nil {
		return nil, err
	}

	if _, err := s.tasks.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to enqueue task: %w", err)
	}

	s.emit(ctx, events.TypeTaskEnqueued, map[string]any{
		"task_id":     task.ID,
		"task_type":   task.TaskType,
		"assigned_to": task.AssignedTo,
		"priority":    task.Priority,
	})

	return task, nil
}

// ListPending returns all pending tasks ordered by priority descending,
// then created_at ascending.
func (s *TaskService) ListPending(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.FindTasks(ctx, store.PendingFilter())
}

// ListHighPriority returns the pending tasks flagged for fast-interval
// polling, in the same order as ListPending. The result is always a
// subset of ListPending.
func (s *TaskService) ListHighPriority(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.FindTasks(ctx, store.HighPriorityFilter())
}

// UpdateStatus sets the status of the task with the given ID. Status is
// an open string; the gateway does not constrain transitions. Returns a
// domain validation error for an empty status or non-positive ID, and
// store.ErrTaskNotFound when the task does not exist.
func (s *TaskService) UpdateStatus(ctx context.Context, id int64, status string) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}
	if status == "" {
		return domain.ErrEmptyStatus
	}

	if err := s.tasks.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.emit(ctx, events.TypeTaskStatusUpdated, map[string]any{
		"task_id": id,
		"status":  status,
	})

	return nil
}

// MarkIntensive flags the task with the given ID for fast-interval
// polling. Idempotent; the flag is never reset by the gateway. Returns
// store.ErrTaskNotFound when the task does not exist.
func (s *TaskService) MarkIntensive(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}

	if err := s.tasks.MarkFastInterval(ctx, id); err != nil {
		return err
	}

	s.emit(ctx, events.TypeTaskMarkedIntensive, map[string]any{
		"task_id": id,
	})

	return nil
}

// emit publishes a domain event, logging and swallowing any failure so
// the originating operation is never affected.
func (s *TaskService) emit(ctx context.Context, eventType string, payload map[string]any) {
	event, err := events.NewTaskEvent(eventType, payload)
	if err != nil {
		s.logger.Warn("failed to build domain event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.logger.Warn("failed to emit domain event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
	}
}
