package extract

import (
	"strings"

	"github.com/okian/draftboard/internal/domain/model"
	"github.com/okian/draftboard/internal/domain/normalize"
)

// FromText recovers records line-by-line from a page's plain text. This is
// the recovery path for pages where layout-based table detection fails,
// which is common in linearized PDF text extraction. Team and position are
// best-effort and may legitimately be empty.
func FromText(page model.Page) []model.RawRecord {
	var records []model.RawRecord
	for _, raw := range strings.Split(page.Text, "\n") {
		if rec, ok := fromLine(raw, page.Number); ok {
			records = append(records, rec)
		}
	}
	return records
}

func fromLine(raw string, pageNum int) (model.RawRecord, bool) {
	line := normalize.Clean(raw)
	if line == "" {
		return model.RawRecord{}, false
	}

	// Headers, footers and links are chrome, not player rows.
	if normalize.IsChrome(line) {
		return model.RawRecord{}, false
	}

	// The trailing number is the blend score; without one the line is not
	// a ranking row.
	score, body, ok := normalize.TrailingNumber(line)
	if !ok {
		return model.RawRecord{}, false
	}

	body = normalize.StripEnumeration(body)
	pos, body := normalize.ParenPosition(body)

	parts := strings.Fields(body)
	team := ""
	if n := len(parts); n > 0 && normalize.IsTeamCode(parts[n-1]) {
		team = parts[n-1]
		parts = parts[:n-1]
	}

	player := normalize.Clean(strings.Join(parts, " "))
	if normalize.LooksLikeURL(player) {
		return model.RawRecord{}, false
	}
	if normalize.TokenCount(player) < minNameTokens {
		return model.RawRecord{}, false
	}

	return model.RawRecord{
		Player: player,
		Team:   team,
		Pos:    pos,
		Score:  &score,
		Page:   pageNum,
	}, true
}
