package api

import (
	"context"
	"net/http"

	"github.com/Ralle1976/botcrafter/internal/api/shared"
	"github.com/Ralle1976/botcrafter/internal/domain"
)

// TaskService is the slice of the service layer the task handler needs.
type TaskService interface {
	Enqueue(ctx context.Context, taskType, assignedTo string, priority int, details string) (*domain.Task, error)
	ListPending(ctx context.Context) ([]*domain.Task, error)
	ListHighPriority(ctx context.Context) ([]*domain.Task, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	MarkIntensive(ctx context.Context, id int64) error
}

// TaskHandler handles the task-queue HTTP endpoints.
type TaskHandler struct {
	tasks TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// AddTask handles POST /add_task requests.
func (h *TaskHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	var req AddTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.TaskType == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "task_type missing")
		return
	}
	if req.AssignedTo == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "assigned_to missing")
		return
	}

	if _, err := h.tasks.Enqueue(r.Context(), req.TaskType, req.AssignedTo, req.Priority, req.Details); err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.NewMessageResponse("Task added successfully"))
}

// GetPendingTasks handles GET /get_pending_tasks requests.
func (h *TaskHandler) GetPendingTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.ListPending(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetHighPriorityTasks handles GET /get_high_priority_tasks requests.
func (h *TaskHandler) GetHighPriorityTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.ListHighPriority(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// UpdateTaskStatus handles POST /update_task_status requests.
func (h *TaskHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateTaskStatusRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.TaskID <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "task_id missing")
		return
	}
	if req.Status == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "status missing")
		return
	}

	if err := h.tasks.UpdateStatus(r.Context(), req.TaskID, req.Status); err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.NewMessageResponse("Task status updated successfully"))
}

// MarkTaskIntensive handles POST /mark_task_intensive requests.
func (h *TaskHandler) MarkTaskIntensive(w http.ResponseWriter, r *http.Request) {
	var req MarkTaskIntensiveRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.TaskID <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "task_id missing")
		return
	}

	if err := h.tasks.MarkIntensive(r.Context(), req.TaskID); err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.NewMessageResponse("Task marked as intensive"))
}
