// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
)

// handleDraft handles POST /sessions/{id}/draft requests.
func (h *SessionsHandler) handleDraft(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.draft_players"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	moved, err := h.deps.MoveToDrafted(r.Context(), id, req.Players)
	if err != nil {
		writeSessionError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, draftResponse{Moved: moved})
}

// handleReset handles POST /sessions/{id}/reset requests.
func (h *SessionsHandler) handleReset(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.reset_draft"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if err := h.deps.ResetDraft(r.Context(), id); err != nil {
		writeSessionError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
