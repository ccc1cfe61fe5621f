package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Ralle1976/botcrafter/internal/domain"
	"github.com/Ralle1976/botcrafter/internal/store"
)

// DefaultRecentLimit is the number of log events returned when the caller
// does not specify a limit.
const DefaultRecentLimit = 100

// EventService provides access to the append-only event log.
type EventService struct {
	eventLog store.EventLogStore
	logger   *slog.Logger
}

// NewEventService creates a new EventService with the given dependencies.
func NewEventService(eventLog store.EventLogStore, logger *slog.Logger) (*EventService, error) {
	if eventLog == nil {
		return nil, errors.New("event log store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &EventService{
		eventLog: eventLog,
		logger:   logger.With(slog.String("component", "event_service")),
	}, nil
}

// Record appends an event to the log. Both eventType and details are
// required; validation failures short-circuit before any store call.
func (s *EventService) Record(
	ctx context.Context,
	eventType, details string,
) (*domain.LogEvent, error) {
	event, err := domain.NewLogEvent(eventType, details)
	if err != nil {
		return nil, err
	}

	if _, err := s.eventLog.CreateLogEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to record event: %w", err)
	}

	return event, nil
}

// Recent returns at most limit log events, newest first. A non-positive
// limit falls back to DefaultRecentLimit.
func (s *EventService) Recent(ctx context.Context, limit int) ([]*domain.LogEvent, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.eventLog.FindRecentLogEvents(ctx, limit)
}
