// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/csv"
	"net/http"
	"strconv"
)

// handleExport handles GET /sessions/{id}/export/{remaining,drafted}.csv
// requests.
func (h *SessionsHandler) handleExport(w http.ResponseWriter, r *http.Request, id string, actions []string) {
	const op = "api.export_board"
	if r.Method != http.MethodGet || len(actions) != 1 {
		http.NotFound(w, r)
		return
	}

	var read func(r *http.Request) ([]Row, error)
	switch actions[0] {
	case "remaining.csv":
		read = func(r *http.Request) ([]Row, error) { return h.deps.Remaining(r.Context(), id) }
	case "drafted.csv":
		read = func(r *http.Request) ([]Row, error) { return h.deps.Drafted(r.Context(), id) }
	default:
		http.NotFound(w, r)
		return
	}

	rows, err := read(r)
	if err != nil {
		writeSessionError(w, op, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+actions[0])
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Player", "Team", "Pos", "Blend", "ADP_Rank"})
	for _, row := range rows {
		rank, blend := "", ""
		if row.Rank != nil {
			rank = strconv.Itoa(*row.Rank)
		}
		if row.Blend != nil {
			blend = strconv.FormatFloat(*row.Blend, 'f', -1, 64)
		}
		_ = cw.Write([]string{row.Player, row.Team, row.Pos, blend, rank})
	}
	cw.Flush()
}
