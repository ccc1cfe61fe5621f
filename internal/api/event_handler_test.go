package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Ralle1976/botcrafter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockEventService is a mock implementation of the EventService interface.
type mockEventService struct {
	recordFn func(ctx context.Context, eventType, details string) (*domain.LogEvent, error)
	recentFn func(ctx context.Context, limit int) ([]*domain.LogEvent, error)
}

func (m *mockEventService) Record(ctx context.Context, eventType, details string) (*domain.LogEvent, error) {
	return m.recordFn(ctx, eventType, details)
}

func (m *mockEventService) Recent(ctx context.Context, limit int) ([]*domain.LogEvent, error) {
	return m.recentFn(ctx, limit)
}

func TestLogEvent(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "success",
			body:        `{"event_type":"bot.started","details":"bot1 came online"}`,
			wantStatus:  http.StatusOK,
			wantMessage: "Event logged successfully",
		},
		{
			name:        "missing_event_type",
			body:        `{"details":"bot1 came online"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "event_type missing",
		},
		{
			name:        "missing_details",
			body:        `{"event_type":"bot.started"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "details missing",
		},
		{
			name:        "malformed_json",
			body:        `not json`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid request body",
		},
		{
			name:       "backend_failure",
			body:       `{"event_type":"bot.started","details":"bot1 came online"}`,
			serviceErr: errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recorded := false
			mockService := &mockEventService{
				recordFn: func(ctx context.Context, eventType, details string) (*domain.LogEvent, error) {
					recorded = true
					if tc.serviceErr != nil {
						return nil, tc.serviceErr
					}
					event, _ := domain.NewLogEvent(eventType, details)
					event.ID = 1
					return event, nil
				},
			}

			handler := NewEventHandler(mockService)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/log_event", strings.NewReader(tc.body))

			handler.LogEvent(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			body := decodeEnvelope(t, rec)
			if tc.wantMessage != "" {
				assert.Equal(t, tc.wantMessage, body["message"])
			}
			if tc.wantStatus == http.StatusBadRequest {
				assert.False(t, recorded, "validation must short-circuit before the service")
			}
		})
	}
}

func TestGetLogs(t *testing.T) {
	t.Run("returns_events_newest_first", func(t *testing.T) {
		now := time.Now().UTC()
		var gotLimit int
		mockService := &mockEventService{
			recentFn: func(ctx context.Context, limit int) ([]*domain.LogEvent, error) {
				gotLimit = limit
				return []*domain.LogEvent{
					{ID: 2, EventType: "bot.stopped", Details: "bot1 went offline", LoggedAt: now},
					{ID: 1, EventType: "bot.started", Details: "bot1 came online", LoggedAt: now.Add(-time.Minute)},
				}, nil
			},
		}

		handler := NewEventHandler(mockService)
		rec := httptest.NewRecorder()
		handler.GetLogs(rec, httptest.NewRequest(http.MethodGet, "/get_logs", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 100, gotLimit)

		var body LogListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "success", body.Status)
		require.Len(t, body.Logs, 2)
		assert.Equal(t, int64(2), body.Logs[0].ID)
		assert.Equal(t, int64(1), body.Logs[1].ID)
	})

	t.Run("empty_list_is_empty_array", func(t *testing.T) {
		mockService := &mockEventService{
			recentFn: func(ctx context.Context, limit int) ([]*domain.LogEvent, error) {
				return []*domain.LogEvent{}, nil
			},
		}

		handler := NewEventHandler(mockService)
		rec := httptest.NewRecorder()
		handler.GetLogs(rec, httptest.NewRequest(http.MethodGet, "/get_logs", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"logs":[]`)
	})

	t.Run("backend_failure", func(t *testing.T) {
		mockService := &mockEventService{
			recentFn: func(ctx context.Context, limit int) ([]*domain.LogEvent, error) {
				return nil, errors.New("connection refused")
			},
		}

		handler := NewEventHandler(mockService)
		rec := httptest.NewRecorder()
		handler.GetLogs(rec, httptest.NewRequest(http.MethodGet, "/get_logs", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
