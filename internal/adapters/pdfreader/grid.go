package pdfreader

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/okian/draftboard/internal/domain/model"
)

// fragment is a horizontal run of text on a page row, anchored at its
// starting X offset.
type fragment struct {
	x    float64
	end  float64
	text string
}

// directJoinGap is the widest gap still treated as intra-word when two
// runs are merged into one fragment.
const directJoinGap = 1.0

// mergeTexts collapses a row's positioned text runs into cell fragments:
// runs closer than cellGap belong to the same cell.
func mergeTexts(texts pdf.TextHorizontal, cellGap float64) []fragment {
	runs := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if t.S != "" {
			runs = append(runs, t)
		}
	}
	if len(runs) == 0 {
		return nil
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].X < runs[j].X })

	var frags []fragment
	cur := fragment{x: runs[0].X, end: runs[0].X + runs[0].W, text: runs[0].S}
	for _, t := range runs[1:] {
		gap := t.X - cur.end
		if gap <= cellGap {
			if gap > directJoinGap && !strings.HasSuffix(cur.text, " ") {
				cur.text += " "
			}
			cur.text += t.S
			if t.X+t.W > cur.end {
				cur.end = t.X + t.W
			}
			continue
		}
		frags = append(frags, cur)
		cur = fragment{x: t.X, end: t.X + t.W, text: t.S}
	}
	frags = append(frags, cur)
	return frags
}

// buildGrid recovers a table grid from cell fragments by clustering
// fragment start offsets into column boundaries: starts separated by more
// than columnGap open a new column. A layout with fewer than two columns
// is not a table.
func buildGrid(fragRows [][]fragment, columnGap float64) (model.Table, bool) {
	var starts []float64
	for _, frags := range fragRows {
		for _, f := range frags {
			starts = append(starts, f.x)
		}
	}
	if len(starts) == 0 {
		return nil, false
	}
	sort.Float64s(starts)

	boundaries := []float64{starts[0]}
	prev := starts[0]
	for _, x := range starts[1:] {
		if x-prev > columnGap {
			boundaries = append(boundaries, x)
		}
		prev = x
	}
	if len(boundaries) < 2 {
		return nil, false
	}

	grid := make(model.Table, 0, len(fragRows))
	for _, frags := range fragRows {
		cells := make([]string, len(boundaries))
		for _, f := range frags {
			col := columnFor(boundaries, f.x)
			if cells[col] == "" {
				cells[col] = f.text
			} else {
				cells[col] += " " + f.text
			}
		}
		grid = append(grid, cells)
	}
	return grid, true
}

// columnFor returns the index of the last boundary at or before x.
func columnFor(boundaries []float64, x float64) int {
	idx := sort.SearchFloat64s(boundaries, x)
	if idx < len(boundaries) && boundaries[idx] == x {
		return idx
	}
	if idx == 0 {
		return 0
	}
	return idx - 1
}
