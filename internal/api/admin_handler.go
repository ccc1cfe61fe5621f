package api

import (
	"net/http"

	"github.com/Ralle1976/botcrafter/internal/api/shared"
	"github.com/Ralle1976/botcrafter/internal/store"
)

// AdminHandler handles the generic table endpoints the original gateway
// exposed for ad-hoc operator access: /init-db, /add_entry and
// /get_entries. These are an explicit trust boundary: the authenticated
// operator names tables and columns directly, and the store only quotes
// the identifiers before interpolating them. They are mounted behind the
// same token auth as everything else and must never be exposed beyond it.
type AdminHandler struct {
	admin  store.AdminStore
	schema store.SchemaStore
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admin store.AdminStore, schema store.SchemaStore) *AdminHandler {
	return &AdminHandler{admin: admin, schema: schema}
}

// InitDB handles GET /init-db requests by (re-)ensuring the schema.
// Safe to call repeatedly.
func (h *AdminHandler) InitDB(w http.ResponseWriter, r *http.Request) {
	if err := h.schema.EnsureSchema(r.Context()); err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.NewMessageResponse("Database initialized successfully"))
}

// AddEntry handles POST /add_entry requests: a generic single-row insert
// into an operator-named table.
func (h *AdminHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req AddEntryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Table == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "table missing")
		return
	}
	if len(req.Values) == 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "values missing")
		return
	}

	if err := h.admin.InsertRow(r.Context(), req.Table, req.Values); err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.NewMessageResponse("Entry added successfully"))
}

// GetEntries handles GET /get_entries?table=<name> requests: a generic
// full-table select.
func (h *AdminHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	table := r.URL.Query().Get("table")
	if table == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "table missing")
		return
	}

	rows, err := h.admin.SelectRows(r.Context(), table)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, EntriesResponse{
		Status: shared.StatusSuccess,
		Data:   rows,
	})
}
