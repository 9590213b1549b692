// Package extract recovers raw player records from ranking document pages.
//
// Two extractors run on every page and their outputs are pooled: a
// table-first pass over detected grids, and a line-by-line fallback over
// the page's plain text. Neither raises per-page errors; pages that match
// nothing contribute zero records.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/okian/draftboard/internal/domain/model"
	"github.com/okian/draftboard/internal/domain/normalize"
)

// headerScanRows is the look-ahead window for locating a header row.
const headerScanRows = 3

// minNameTokens is the main noise filter: real player names carry at least
// a first and a last name. A legal single-token nickname is an accepted
// false negative.
const minNameTokens = 2

var (
	headerRowRe  = regexp.MustCompile(`(?i)\bBL(END)?\b`)
	scoreHeadRe  = regexp.MustCompile(`(?i)^bl(end)?$`)
	playerHeader = "player"
	teamHeader   = "team"
	posHeader    = "pos"
)

// FromTables walks a page's detected tables and maps rows of any ranking
// table to raw records. A table counts as a ranking table only when one of
// its first rows mentions the blend score column.
func FromTables(page model.Page) []model.RawRecord {
	var records []model.RawRecord
	for _, tbl := range page.Tables {
		records = append(records, fromTable(tbl, page.Number)...)
	}
	return records
}

func fromTable(tbl model.Table, pageNum int) []model.RawRecord {
	headerIdx, ok := findHeaderRow(tbl)
	if !ok {
		return nil
	}

	headers := headerNames(tbl[headerIdx])
	colmap := make(map[string]int, len(headers))
	for j, h := range headers {
		colmap[strings.ToLower(h)] = j
	}

	scoreIdx := scoreColumn(headers)
	playerIdx, ok := colmap[playerHeader]
	if !ok {
		playerIdx = 0
	}
	teamIdx, hasTeam := colmap[teamHeader]
	posIdx, hasPos := colmap[posHeader]

	var records []model.RawRecord
	for _, row := range tbl[headerIdx+1:] {
		if emptyRow(row) {
			continue
		}
		player := normalize.Clean(cell(row, playerIdx))
		if normalize.TokenCount(player) < minNameTokens {
			continue
		}
		rec := model.RawRecord{Player: player, Page: pageNum}
		if hasTeam {
			rec.Team = normalize.Clean(cell(row, teamIdx))
		}
		if hasPos {
			rec.Pos = normalize.Clean(cell(row, posIdx))
		}
		if scoreIdx >= 0 {
			if v, ok := normalize.FirstNumber(normalize.Clean(cell(row, scoreIdx))); ok {
				score := v
				rec.Score = &score
			}
		}
		records = append(records, rec)
	}
	return records
}

// findHeaderRow scans the first rows of a table for one whose joined cell
// text mentions BL/BLEND as a whole word. Detection is by content, not
// position, so layout drift across pages and years is tolerated.
func findHeaderRow(tbl model.Table) (int, bool) {
	limit := headerScanRows
	if len(tbl) < limit {
		limit = len(tbl)
	}
	for i := 0; i < limit; i++ {
		var parts []string
		for _, c := range tbl[i] {
			if cleaned := normalize.Clean(c); cleaned != "" {
				parts = append(parts, cleaned)
			}
		}
		if headerRowRe.MatchString(strings.Join(parts, " ")) {
			return i, true
		}
	}
	return 0, false
}

// headerNames normalizes header cells; empty cells get a positional
// placeholder so the name -> column mapping stays total.
func headerNames(row []string) []string {
	names := make([]string, len(row))
	for j, c := range row {
		name := normalize.Clean(c)
		if name == "" {
			name = fmt.Sprintf("c%d", j)
		}
		names[j] = name
	}
	return names
}

// scoreColumn returns the index of the column whose header is exactly
// bl/blend, or -1.
func scoreColumn(headers []string) int {
	for j, h := range headers {
		if scoreHeadRe.MatchString(h) {
			return j
		}
	}
	return -1
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if normalize.Clean(c) != "" {
			return false
		}
	}
	return true
}

// cell reads a column; short or ragged rows yield the empty string.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
