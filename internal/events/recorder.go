package events

import (
	"context"
	"log/slog"

	"github.com/Ralle1976/botcrafter/internal/domain"
	"github.com/Ralle1976/botcrafter/internal/store"
)

// LogRecorder is an EventHandler that appends every received event to the
// persistent event log. The event type becomes the log event_type and the
// JSON payload its details.
type LogRecorder struct {
	eventLog store.EventLogStore
	logger   *slog.Logger
}

// NewLogRecorder creates a LogRecorder writing through the given store.
func NewLogRecorder(eventLog store.EventLogStore, logger *slog.Logger) *LogRecorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogRecorder{
		eventLog: eventLog,
		logger:   logger.With("component", "event_log_recorder"),
	}
}

// Ensure LogRecorder implements EventHandler
var _ EventHandler = (*LogRecorder)(nil)

// HandleEvent persists the event. Errors are returned to the emitter,
// which logs them; they never propagate to the operation that produced
// the event.
func (r *LogRecorder) HandleEvent(ctx context.Context, event *TaskEvent) error {
	logEvent, err := domain.NewLogEvent(event.Type, string(event.Payload))
	if err != nil {
		return err
	}

	if _, err := r.eventLog.CreateLogEvent(ctx, logEvent); err != nil {
		return err
	}

	r.logger.Debug("event recorded",
		"event_id", event.ID,
		"event_type", event.Type,
		"log_id", logEvent.ID)
	return nil
}
