package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "0123456789abcdef0123456789abcdef"

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "bare_token",
			header:     testToken,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "bearer_token",
			header:     "Bearer " + testToken,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing_header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong_token",
			header:     "Bearer not-the-token-at-all-no-sir",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token_prefix_only",
			header:     testToken[:16],
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/get_pending_tasks", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			NewAuthMiddleware(testToken).Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)

			if tt.wantStatus == http.StatusUnauthorized {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "error", body["status"])
				assert.Equal(t, "Unauthorized", body["message"])
			}
		})
	}
}
