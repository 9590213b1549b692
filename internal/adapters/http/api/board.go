// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// handleBoard handles the GET roster, remaining and drafted reads; read
// picks which partition comes back.
func (h *SessionsHandler) handleBoard(w http.ResponseWriter, r *http.Request, id string, read func(context.Context, string) ([]Row, error)) {
	const op = "api.read_board"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rows, err := read(r.Context(), id)
	if err != nil {
		writeSessionError(w, op, err)
		return
	}
	if rows == nil {
		rows = []Row{}
	}
	writeJSON(w, http.StatusOK, rows)
}
