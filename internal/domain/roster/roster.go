// Package roster consolidates raw extracted records into the canonical
// ranked roster.
package roster

import (
	"sort"

	"github.com/okian/draftboard/internal/domain/model"
	"github.com/okian/draftboard/internal/domain/types"
)

// DefaultCap bounds the roster when no cap is configured.
const DefaultCap = 300

// Consolidate turns pooled raw records into the canonical roster: sort by
// blend score ascending with missing scores last and player name as the
// tie-break, deduplicate by player keeping the first occurrence after the
// sort, truncate to cap, and assign dense 1..N ranks in sort order.
//
// Empty input yields an empty roster, never an error.
func Consolidate(records []model.RawRecord, cap int) []types.Row {
	if cap <= 0 {
		cap = DefaultCap
	}

	rows := make([]types.Row, 0, len(records))
	for _, rec := range records {
		row := types.Row{Player: rec.Player, Team: rec.Team, Pos: rec.Pos}
		if rec.Score != nil {
			score := *rec.Score
			row.Blend = &score
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return less(rows[i], rows[j])
	})

	// First occurrence after the sort wins, so the best-scored appearance
	// of a duplicated player survives.
	seen := make(map[string]struct{}, len(rows))
	deduped := rows[:0]
	for _, row := range rows {
		if _, dup := seen[row.Player]; dup {
			continue
		}
		seen[row.Player] = struct{}{}
		deduped = append(deduped, row)
	}

	if len(deduped) > cap {
		deduped = deduped[:cap]
	}

	for i := range deduped {
		rank := i + 1
		deduped[i].Rank = &rank
	}
	return deduped
}

// less orders rows by blend ascending treating a missing score as
// +infinity, then by player name for determinism.
func less(a, b types.Row) bool {
	switch {
	case a.Blend == nil && b.Blend == nil:
		return a.Player < b.Player
	case a.Blend == nil:
		return false
	case b.Blend == nil:
		return true
	case *a.Blend != *b.Blend:
		return *a.Blend < *b.Blend
	default:
		return a.Player < b.Player
	}
}
