package api

import (
	"time"

	"github.com/Ralle1976/botcrafter/internal/api/shared"
	"github.com/Ralle1976/botcrafter/internal/domain"
)

// Request payloads

// AddTaskRequest defines the payload for POST /add_task.
type AddTaskRequest struct {
	TaskType   string `json:"task_type"`
	AssignedTo string `json:"assigned_to"`
	Priority   int    `json:"priority"`
	Details    string `json:"details"`
}

// UpdateTaskStatusRequest defines the payload for POST /update_task_status.
type UpdateTaskStatusRequest struct {
	TaskID int64  `json:"task_id"`
	Status string `json:"status"`
}

// MarkTaskIntensiveRequest defines the payload for POST /mark_task_intensive.
type MarkTaskIntensiveRequest struct {
	TaskID int64 `json:"task_id"`
}

// LogEventRequest defines the payload for POST /log_event.
type LogEventRequest struct {
	EventType string `json:"event_type"`
	Details   string `json:"details"`
}

// AddEntryRequest defines the payload for the generic POST /add_entry
// admin endpoint.
type AddEntryRequest struct {
	Table  string         `json:"table"`
	Values map[string]any `json:"values"`
}

// Response payloads

// TaskResponse is the wire form of a task.
type TaskResponse struct {
	TaskID       int64     `json:"task_id"`
	TaskType     string    `json:"task_type"`
	Status       string    `json:"status"`
	AssignedTo   string    `json:"assigned_to"`
	Priority     int       `json:"priority"`
	Details      string    `json:"details"`
	FastInterval bool      `json:"fast_interval"`
	CreatedAt    time.Time `json:"created_at"`
}

// TaskListResponse is the body of the task listing endpoints.
type TaskListResponse struct {
	Status string         `json:"status"`
	Tasks  []TaskResponse `json:"tasks"`
}

// LogEventResponse is the wire form of a log event.
type LogEventResponse struct {
	ID        int64     `json:"id"`
	EventType string    `json:"event_type"`
	Details   string    `json:"details"`
	LoggedAt  time.Time `json:"logged_at"`
}

// LogListResponse is the body of GET /get_logs.
type LogListResponse struct {
	Status string             `json:"status"`
	Logs   []LogEventResponse `json:"logs"`
}

// EntriesResponse is the body of the generic GET /get_entries admin
// endpoint.
type EntriesResponse struct {
	Status string           `json:"status"`
	Data   []map[string]any `json:"data"`
}

func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:       task.ID,
		TaskType:     task.TaskType,
		Status:       task.Status,
		AssignedTo:   task.AssignedTo,
		Priority:     task.Priority,
		Details:      task.Details,
		FastInterval: task.FastInterval,
		CreatedAt:    task.CreatedAt,
	}
}

func tasksToResponse(tasks []*domain.Task) TaskListResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return TaskListResponse{Status: shared.StatusSuccess, Tasks: out}
}

func logsToResponse(events []*domain.LogEvent) LogListResponse {
	out := make([]LogEventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, LogEventResponse{
			ID:        event.ID,
			EventType: event.EventType,
			Details:   event.Details,
			LoggedAt:  event.LoggedAt,
		})
	}
	return LogListResponse{Status: shared.StatusSuccess, Logs: out}
}
