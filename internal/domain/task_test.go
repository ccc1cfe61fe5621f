package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	tests := []struct {
		name       string
		taskType   string
		assignedTo string
		priority   int
		details    string
		wantErr    error
		wantPrio   int
	}{
		{
			name:       "valid_task",
			taskType:   "scan",
			assignedTo: "bot1",
			priority:   5,
			details:    "scan the market",
			wantPrio:   5,
		},
		{
			name:       "zero_priority_defaults_to_one",
			taskType:   "scan",
			assignedTo: "bot1",
			priority:   0,
			wantPrio:   DefaultPriority,
		},
		{
			name:       "negative_priority_defaults_to_one",
			taskType:   "scan",
			assignedTo: "bot1",
			priority:   -3,
			wantPrio:   DefaultPriority,
		},
		{
			name:       "missing_task_type",
			assignedTo: "bot1",
			priority:   1,
			wantErr:    ErrEmptyTaskType,
		},
		{
			name:     "missing_assigned_to",
			taskType: "scan",
			priority: 1,
			wantErr:  ErrEmptyAssignedTo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := NewTask(tt.taskType, tt.assignedTo, tt.priority, tt.details)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsValidationError(err))
				assert.Nil(t, task)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, StatusPending, task.Status)
			assert.False(t, task.FastInterval)
			assert.Equal(t, tt.wantPrio, task.Priority)
			assert.Equal(t, tt.details, task.Details)
			assert.Zero(t, task.ID, "id is assigned by the store")
		})
	}
}

func TestNewLogEvent(t *testing.T) {
	t.Run("valid_event", func(t *testing.T) {
		event, err := NewLogEvent("bot_started", "bot1 came online")
		require.NoError(t, err)
		assert.Equal(t, "bot_started", event.EventType)
		assert.Equal(t, "bot1 came online", event.Details)
		assert.Zero(t, event.ID)
	})

	t.Run("missing_event_type", func(t *testing.T) {
		event, err := NewLogEvent("", "details")
		assert.ErrorIs(t, err, ErrEmptyEventType)
		assert.Nil(t, event)
	})

	t.Run("missing_details", func(t *testing.T) {
		event, err := NewLogEvent("bot_started", "")
		assert.ErrorIs(t, err, ErrEmptyEventDetails)
		assert.Nil(t, event)
	})
}
