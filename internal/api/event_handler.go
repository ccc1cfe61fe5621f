package api

import (
	"context"
	"net/http"

	"github.com/Ralle1976/botcrafter/internal/api/shared"
	"github.com/Ralle1976/botcrafter/internal/domain"
	"github.com/Ralle1976/botcrafter/internal/service"
)

// EventService is the slice of the service layer the event handler needs.
type EventService interface {
	Record(ctx context.Context, eventType, details string) (*domain.LogEvent, error)
	Recent(ctx context.Context, limit int) ([]*domain.LogEvent, error)
}

// EventHandler handles the event-log HTTP endpoints.
type EventHandler struct {
	events EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(events EventService) *EventHandler {
	return &EventHandler{events: events}
}

// LogEvent handles POST /log_event requests.
func (h *EventHandler) LogEvent(w http.ResponseWriter, r *http.Request) {
	var req LogEventRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.EventType == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "event_type missing")
		return
	}
	if req.Details == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "details missing")
		return
	}

	if _, err := h.events.Record(r.Context(), req.EventType, req.Details); err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.NewMessageResponse("Event logged successfully"))
}

// GetLogs handles GET /get_logs requests. It returns at most the default
// number of events, newest first.
func (h *EventHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.events.Recent(r.Context(), service.DefaultRecentLimit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, logsToResponse(logs))
}
