// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"

	service "github.com/okian/draftboard/internal/app"
)

// SessionsHandler handles the session collection and everything nested
// under a single session.
type SessionsHandler struct {
	deps Dependencies
}

// NewSessionsHandler creates a new sessions handler.
func NewSessionsHandler(deps Dependencies) *SessionsHandler {
	return &SessionsHandler{deps: deps}
}

// HandleCollection handles POST /sessions requests.
func (h *SessionsHandler) HandleCollection(w http.ResponseWriter, r *http.Request) {
	const op = "api.create_session"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	id, err := h.deps.CreateSession(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{SessionID: id})
}

// HandleSession dispatches /sessions/{id}/... requests to the action
// handlers.
func (h *SessionsHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	id, actions := splitSessionPath(r.URL.Path)
	if id == "" {
		http.NotFound(w, r)
		return
	}

	if len(actions) == 0 {
		h.handleDelete(w, r, id)
		return
	}

	switch actions[0] {
	case "document":
		h.handleDocument(w, r, id)
	case "roster":
		h.handleBoard(w, r, id, h.deps.Roster)
	case "remaining":
		h.handleBoard(w, r, id, h.deps.Remaining)
	case "drafted":
		h.handleBoard(w, r, id, h.deps.Drafted)
	case "draft":
		h.handleDraft(w, r, id)
	case "reset":
		h.handleReset(w, r, id)
	case "export":
		h.handleExport(w, r, id, actions[1:])
	default:
		http.NotFound(w, r)
	}
}

// handleDelete handles DELETE /sessions/{id} requests.
func (h *SessionsHandler) handleDelete(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.drop_session"
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	if err := h.deps.DropSession(r.Context(), id); err != nil {
		writeSessionError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeSessionError translates service errors to HTTP responses.
func writeSessionError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "session_not_found", NewKind(op, ErrNotFound))
	case errors.Is(err, service.ErrEmptySelection):
		writeError(w, http.StatusBadRequest, "empty_selection", WrapKind(op, ErrBadRequest, err))
	case errors.Is(err, service.ErrDocumentTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "document_too_large", Wrap(op, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
