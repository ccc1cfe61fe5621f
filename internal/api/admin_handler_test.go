package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ralle1976/botcrafter/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAdminStore is a mock implementation of store.AdminStore.
type mockAdminStore struct {
	insertRowFn  func(ctx context.Context, table string, values map[string]any) error
	selectRowsFn func(ctx context.Context, table string) ([]map[string]any, error)
}

func (m *mockAdminStore) InsertRow(ctx context.Context, table string, values map[string]any) error {
	return m.insertRowFn(ctx, table, values)
}

func (m *mockAdminStore) SelectRows(ctx context.Context, table string) ([]map[string]any, error) {
	return m.selectRowsFn(ctx, table)
}

// mockSchemaStore is a mock implementation of store.SchemaStore.
type mockSchemaStore struct {
	ensureSchemaFn func(ctx context.Context) error
}

func (m *mockSchemaStore) EnsureSchema(ctx context.Context) error {
	return m.ensureSchemaFn(ctx)
}

func TestInitDB(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		calls := 0
		schema := &mockSchemaStore{
			ensureSchemaFn: func(ctx context.Context) error {
				calls++
				return nil
			},
		}

		handler := NewAdminHandler(&mockAdminStore{}, schema)
		rec := httptest.NewRecorder()
		handler.InitDB(rec, httptest.NewRequest(http.MethodGet, "/init-db", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, calls)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, "success", body["status"])
		assert.Equal(t, "Database initialized successfully", body["message"])
	})

	t.Run("schema_failure", func(t *testing.T) {
		schema := &mockSchemaStore{
			ensureSchemaFn: func(ctx context.Context) error {
				return fmt.Errorf("%w: create tasks table: connection refused", store.ErrSchema)
			},
		}

		handler := NewAdminHandler(&mockAdminStore{}, schema)
		rec := httptest.NewRecorder()
		handler.InitDB(rec, httptest.NewRequest(http.MethodGet, "/init-db", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, "error", body["status"])
	})
}

func TestAddEntry(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		storeErr    error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "success",
			body:        `{"table":"tasks","values":{"task_type":"scan","assigned_to":"bot1"}}`,
			wantStatus:  http.StatusOK,
			wantMessage: "Entry added successfully",
		},
		{
			name:        "missing_table",
			body:        `{"values":{"task_type":"scan"}}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "table missing",
		},
		{
			name:        "missing_values",
			body:        `{"table":"tasks"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "values missing",
		},
		{
			name:        "empty_values",
			body:        `{"table":"tasks","values":{}}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "values missing",
		},
		{
			name:       "unknown_table",
			body:       `{"table":"nope","values":{"x":1}}`,
			storeErr:   fmt.Errorf("%w: relation does not exist", store.ErrNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "backend_failure",
			body:       `{"table":"tasks","values":{"task_type":"scan"}}`,
			storeErr:   errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotTable string
			var gotValues map[string]any
			admin := &mockAdminStore{
				insertRowFn: func(ctx context.Context, table string, values map[string]any) error {
					gotTable = table
					gotValues = values
					return tc.storeErr
				},
			}

			handler := NewAdminHandler(admin, &mockSchemaStore{})
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/add_entry", strings.NewReader(tc.body))

			handler.AddEntry(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantMessage != "" {
				body := decodeEnvelope(t, rec)
				assert.Equal(t, tc.wantMessage, body["message"])
			}
			if tc.name == "success" {
				assert.Equal(t, "tasks", gotTable)
				assert.Equal(t, "scan", gotValues["task_type"])
			}
		})
	}
}

func TestGetEntries(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		admin := &mockAdminStore{
			selectRowsFn: func(ctx context.Context, table string) ([]map[string]any, error) {
				require.Equal(t, "logs", table)
				return []map[string]any{
					{"id": int64(1), "event_type": "bot.started"},
				}, nil
			},
		}

		handler := NewAdminHandler(admin, &mockSchemaStore{})
		rec := httptest.NewRecorder()
		handler.GetEntries(rec, httptest.NewRequest(http.MethodGet, "/get_entries?table=logs", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var body EntriesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "success", body.Status)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "bot.started", body.Data[0]["event_type"])
	})

	t.Run("missing_table_param", func(t *testing.T) {
		handler := NewAdminHandler(&mockAdminStore{}, &mockSchemaStore{})
		rec := httptest.NewRecorder()
		handler.GetEntries(rec, httptest.NewRequest(http.MethodGet, "/get_entries", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, "table missing", body["message"])
	})

	t.Run("unknown_table", func(t *testing.T) {
		admin := &mockAdminStore{
			selectRowsFn: func(ctx context.Context, table string) ([]map[string]any, error) {
				return nil, fmt.Errorf("%w: relation does not exist", store.ErrNotFound)
			},
		}

		handler := NewAdminHandler(admin, &mockSchemaStore{})
		rec := httptest.NewRecorder()
		handler.GetEntries(rec, httptest.NewRequest(http.MethodGet, "/get_entries?table=nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
