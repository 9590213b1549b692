package drill

import (
	"fmt"

	"github.com/okian/draftboard/internal/domain/types"
)

// verifyRoster checks the consolidated roster shape: dense ranks from 1,
// blend scores ascending with nulls last, no repeated players.
func verifyRoster(rows []types.Row) error {
	seen := make(map[string]struct{}, len(rows))
	sawNull := false
	prev := 0.0
	for i, row := range rows {
		if row.Rank == nil || *row.Rank != i+1 {
			return fmt.Errorf("row %d: want rank %d, got %v", i, i+1, row.Rank)
		}
		if _, ok := seen[row.Player]; ok {
			return fmt.Errorf("row %d: duplicate player %q", i, row.Player)
		}
		seen[row.Player] = struct{}{}

		if row.Blend == nil {
			sawNull = true
			continue
		}
		if sawNull {
			return fmt.Errorf("row %d: scored player %q after unscored rows", i, row.Player)
		}
		if *row.Blend < prev {
			return fmt.Errorf("row %d: blend %f out of order", i, *row.Blend)
		}
		prev = *row.Blend
	}
	return nil
}

// verifyPartition checks that remaining and drafted are disjoint and
// together cover the roster in order.
func verifyPartition(roster, remaining, drafted []types.Row) error {
	if len(remaining)+len(drafted) != len(roster) {
		return fmt.Errorf("partition size mismatch: %d remaining + %d drafted != %d roster",
			len(remaining), len(drafted), len(roster))
	}

	draftedSet := make(map[string]struct{}, len(drafted))
	for _, row := range drafted {
		draftedSet[row.Player] = struct{}{}
	}
	for _, row := range remaining {
		if _, ok := draftedSet[row.Player]; ok {
			return fmt.Errorf("player %q on both sides of the board", row.Player)
		}
	}

	merged := make([]string, 0, len(roster))
	ri, di := 0, 0
	for _, row := range roster {
		switch {
		case ri < len(remaining) && remaining[ri].Player == row.Player:
			ri++
		case di < len(drafted) && drafted[di].Player == row.Player:
			di++
		default:
			return fmt.Errorf("player %q missing or out of order in partition", row.Player)
		}
		merged = append(merged, row.Player)
	}
	if len(merged) != len(roster) {
		return fmt.Errorf("partition does not cover roster")
	}
	return nil
}
