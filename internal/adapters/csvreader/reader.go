// Package csvreader turns CSV ranking exports into raw records. Header
// names vary between sources, so columns are located through a synonym
// table rather than fixed positions.
package csvreader

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/okian/draftboard/internal/domain/model"
	"github.com/okian/draftboard/internal/domain/normalize"
	"github.com/okian/draftboard/pkg/logger"
	"github.com/okian/draftboard/pkg/metrics"
)

// Header synonyms, lowercased. The first header matching a synonym wins.
var (
	playerHeaders = []string{"player", "name", "player_name"}
	scoreHeaders  = []string{"blend", "adp", "avg_draft_position", "avgdraftposition"}
	teamHeaders   = []string{"team", "tm"}
	posHeaders    = []string{"pos", "position"}
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader extracts records from CSV documents.
type Reader struct {
	logger logger.Logger
}

// New creates a Reader with configuration options.
func New(opts ...Option) *Reader {
	r := &Reader{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logger.Get().Named("csvreader")
	}
	return r
}

// Records parses content and returns one raw record per usable data row.
// Rows whose player cell is empty are skipped.
func (r *Reader) Records(ctx context.Context, content []byte) ([]model.RawRecord, error) {
	if len(content) == 0 {
		return nil, ErrEmptyDocument
	}

	cr := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(content, utf8BOM)))
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		metrics.RecordErrorByComponent("csvreader", "read_failed")
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	cols := locate(header)

	var records []model.RawRecord
	for line := 2; ; line++ {
		select {
		case <-ctx.Done():
			return records, ctx.Err()
		default:
		}

		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			metrics.RecordErrorByComponent("csvreader", "read_failed")
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedDocument, line, err)
		}

		player := normalize.Clean(cell(row, cols.player))
		if player == "" {
			metrics.RecordRowRejected("empty_player")
			continue
		}

		rec := model.RawRecord{
			Player: player,
			Team:   normalize.Clean(cell(row, cols.team)),
			Pos:    normalize.Clean(cell(row, cols.pos)),
		}
		if raw := normalize.Clean(cell(row, cols.score)); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				rec.Score = &v
			}
		}
		records = append(records, rec)
	}

	metrics.RecordRecordsExtracted("csv", len(records))
	r.logger.Debug(ctx, "csv document parsed",
		logger.Int("records", len(records)))
	return records, nil
}

// columns holds the resolved index per field; -1 means absent.
type columns struct {
	player int
	score  int
	team   int
	pos    int
}

// locate maps the header row onto field indices. A file without a
// recognizable player header falls back to the first column.
func locate(header []string) columns {
	cols := columns{
		player: find(header, playerHeaders),
		score:  find(header, scoreHeaders),
		team:   find(header, teamHeaders),
		pos:    find(header, posHeaders),
	}
	if cols.player < 0 {
		cols.player = 0
	}
	return cols
}

func find(header []string, synonyms []string) int {
	for i, h := range header {
		name := strings.ToLower(normalize.Clean(h))
		for _, s := range synonyms {
			if name == s {
				return i
			}
		}
	}
	return -1
}

// cell reads a column; absent or short rows yield the empty string.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
