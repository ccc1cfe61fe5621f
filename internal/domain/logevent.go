package domain

import (
	"time"
)

// LogEvent is an append-only record of a notable occurrence, independent
// of the task queue. The store assigns ID and LoggedAt on insert; log
// events are never updated or deleted.
type LogEvent struct {
	ID        int64     `json:"id"`
	EventType string    `json:"event_type"`
	Details   string    `json:"details"`
	LoggedAt  time.Time `json:"logged_at"`
}

// NewLogEvent creates a LogEvent with the given type and details.
// Both fields are required.
func NewLogEvent(eventType, details string) (*LogEvent, error) {
	event := &LogEvent{
		EventType: eventType,
		Details:   details,
	}

	if err := event.Validate(); err != nil {
		return nil, err
	}

	return event, nil
}

// Validate checks that the LogEvent carries its required fields.
func (e *LogEvent) Validate() error {
	if e.EventType == "" {
		return ErrEmptyEventType
	}
	if e.Details == "" {
		return ErrEmptyEventDetails
	}
	return nil
}
