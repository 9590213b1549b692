// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	service "github.com/okian/draftboard/internal/app"
)

// handleDocument handles POST /sessions/{id}/document requests. The
// document kind comes from the Content-Type header, with a ?kind= query
// override for clients that upload raw bytes.
func (h *SessionsHandler) handleDocument(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.load_document"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	content, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unreadable_body", WrapKind(op, ErrBadRequest, err))
		return
	}

	kind := documentKind(r, content)
	if kind == "" {
		writeError(w, http.StatusBadRequest, "unknown_document_kind", NewKind(op, ErrBadRequest))
		return
	}

	var size int
	switch kind {
	case "pdf":
		size, err = h.deps.LoadPDF(r.Context(), id, content)
	case "csv":
		size, err = h.deps.LoadCSV(r.Context(), id, content)
	}
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) || errors.Is(err, service.ErrDocumentTooLarge) {
			writeSessionError(w, op, err)
			return
		}
		writeError(w, http.StatusBadRequest, "unreadable_document", WrapKind(op, ErrBadRequest, err))
		return
	}
	writeJSON(w, http.StatusOK, documentResponse{RosterSize: size})
}

// documentKind resolves the upload kind to "pdf", "csv" or "". The ?kind=
// query wins, then the Content-Type header, then the %PDF magic bytes.
func documentKind(r *http.Request, content []byte) string {
	if kind := r.URL.Query().Get("kind"); kind != "" {
		switch strings.ToLower(kind) {
		case "pdf":
			return "pdf"
		case "csv":
			return "csv"
		}
		return ""
	}

	if ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err == nil {
		switch ct {
		case "application/pdf":
			return "pdf"
		case "text/csv", "application/csv":
			return "csv"
		}
	}

	if bytes.HasPrefix(content, []byte("%PDF")) {
		return "pdf"
	}
	return ""
}
