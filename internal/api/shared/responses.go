package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Ralle1976/botcrafter/internal/redact"
)

// Envelope status values. Every response body carries a "status" field
// with one of these; the worker bots switch on it.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// MessageResponse is the body of success responses that only carry a
// confirmation message.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewMessageResponse builds a success envelope with the given message.
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Status: StatusSuccess, Message: message}
}

// RespondWithJSON writes a JSON response with the given status code and body.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes an error envelope with the given status code
// and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{Status: StatusError, Message: message})
}

// RespondWithErrorAndLog writes an error envelope and logs the underlying
// error with full (redacted) detail. 5xx responses log at ERROR level,
// everything else at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{Status: StatusError, Message: userMessage})
}
