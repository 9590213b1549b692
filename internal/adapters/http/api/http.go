// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/okian/draftboard/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Session lifecycle.
	CreateSession(ctx context.Context) (string, error)
	DropSession(ctx context.Context, id string) error

	// Document ingestion. Both return the consolidated roster size.
	LoadPDF(ctx context.Context, id string, content []byte) (int, error)
	LoadCSV(ctx context.Context, id string, content []byte) (int, error)

	// Board reads expose the roster partition.
	Roster(ctx context.Context, id string) ([]Row, error)
	Remaining(ctx context.Context, id string) ([]Row, error)
	Drafted(ctx context.Context, id string) ([]Row, error)

	// Draft writes.
	MoveToDrafted(ctx context.Context, id string, players []string) (int, error)
	ResetDraft(ctx context.Context, id string) error
}

// Row mirrors the read shape returned by board queries.
type Row = types.Row

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	sessionsHandler *SessionsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		sessionsHandler: NewSessionsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/sessions", MetricsMiddleware(s.sessionsHandler.HandleCollection, "sessions"))
	mux.HandleFunc("/sessions/", MetricsMiddleware(s.sessionsHandler.HandleSession, "sessions"))
}

type sessionResponse struct {
	SessionID string `json:"session_id"`
}

type documentResponse struct {
	RosterSize int `json:"roster_size"`
}

// draftRequest mirrors the request schema for POST draft.
type draftRequest struct {
	Players []string `json:"players"`
}

type draftResponse struct {
	Moved int `json:"moved"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// splitSessionPath breaks /sessions/{id}/... into the id and the action
// segments after it.
func splitSessionPath(path string) (string, []string) {
	rest := strings.TrimPrefix(path, "/sessions/")
	rest = strings.Trim(rest, "/")
	if rest == "" {
		return "", nil
	}
	parts := strings.Split(rest, "/")
	return parts[0], parts[1:]
}
