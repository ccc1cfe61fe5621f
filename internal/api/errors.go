package api

import (
	"errors"
	"net/http"

	"github.com/Ralle1976/botcrafter/internal/api/shared"
	"github.com/Ralle1976/botcrafter/internal/domain"
	"github.com/Ralle1976/botcrafter/internal/redact"
	"github.com/Ralle1976/botcrafter/internal/store"
)

// respondServiceError translates a service or store error into the
// matching HTTP response. Validation errors become 400, missing entities
// 404, and everything else is a backend failure surfaced as 500 with the
// (redacted) backend message attached, matching what the bots already
// parse for diagnostics.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case domain.IsValidationError(err):
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
	case store.IsNotFoundError(err):
		shared.RespondWithError(w, r, http.StatusNotFound, redact.Error(err))
	case errors.Is(err, store.ErrInvalidEntity):
		shared.RespondWithError(w, r, http.StatusBadRequest, redact.Error(err))
	default:
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, redact.Error(err), err)
	}
}
