// Package pdfreader turns raw PDF bytes into the page model consumed by
// the extraction pipeline: per-page candidate table grids plus a plain-text
// rendering.
package pdfreader

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/okian/draftboard/internal/domain/model"
	"github.com/okian/draftboard/pkg/logger"
	"github.com/okian/draftboard/pkg/metrics"
)

// Default geometry thresholds in PDF points. Word gaps inside a cell are
// narrow; column gutters are much wider.
const (
	defaultCellGap   = 6.0
	defaultColumnGap = 18.0
)

// Reader extracts pages from PDF documents.
type Reader struct {
	cellGap   float64
	columnGap float64
	logger    logger.Logger
}

// New creates a Reader with configuration options.
func New(opts ...Option) *Reader {
	r := &Reader{
		cellGap:   defaultCellGap,
		columnGap: defaultColumnGap,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logger.Get().Named("pdfreader")
	}
	return r
}

// Pages parses content and returns one model.Page per document page.
// Pages the backend cannot read are skipped; a stream the backend cannot
// open at all is a hard error for the caller to surface as "could not read
// this file".
func (r *Reader) Pages(ctx context.Context, content []byte) ([]model.Page, error) {
	if len(content) == 0 {
		return nil, ErrEmptyDocument
	}

	reader, err := open(content)
	if err != nil {
		metrics.RecordErrorByComponent("pdfreader", "open_failed")
		return nil, fmt.Errorf("%w: %w", ErrOpenDocument, err)
	}

	pages := make([]model.Page, 0, reader.NumPage())
	for num := 1; num <= reader.NumPage(); num++ {
		select {
		case <-ctx.Done():
			return pages, ctx.Err()
		default:
		}

		page, ok := r.extractPage(ctx, reader, num)
		if !ok {
			continue
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// open wraps reader construction; the upstream parser panics on some
// malformed cross-reference tables, so the panic is converted to an error.
func open(content []byte) (reader *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("pdf reader panic: %v", rec)
		}
	}()
	return pdf.NewReader(bytes.NewReader(content), int64(len(content)))
}

// extractPage pulls positioned text off one page and derives both the
// plain-text rendering and a candidate table grid. A page that cannot be
// read contributes nothing.
func (r *Reader) extractPage(ctx context.Context, reader *pdf.Reader, num int) (page model.Page, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warn(ctx, "skipping unreadable page",
				logger.Int("page", num),
				logger.Any("panic", rec),
			)
			metrics.RecordErrorByComponent("pdfreader", "page_panic")
			ok = false
		}
	}()

	p := reader.Page(num)
	if p.V.IsNull() {
		return model.Page{}, false
	}

	rows, err := p.GetTextByRow()
	if err != nil {
		// Fall back to the flat text rendering; the text-line extractor
		// can still work with it.
		text, terr := p.GetPlainText(nil)
		if terr != nil {
			r.logger.Debug(ctx, "page yielded no text",
				logger.Int("page", num),
				logger.Error(err),
			)
			return model.Page{}, false
		}
		return model.Page{Number: num, Text: text}, true
	}

	fragRows := r.fragmentRows(rows)
	page = model.Page{Number: num, Text: renderText(fragRows)}
	if grid, isTable := buildGrid(fragRows, r.columnGap); isTable {
		page.Tables = []model.Table{grid}
	}
	return page, true
}

// fragmentRows converts positioned text rows into per-row cell fragments,
// top of the page first.
func (r *Reader) fragmentRows(rows pdf.Rows) [][]fragment {
	sorted := make([]*pdf.Row, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Position > sorted[j].Position
	})

	out := make([][]fragment, 0, len(sorted))
	for _, row := range sorted {
		frags := mergeTexts(row.Content, r.cellGap)
		if len(frags) > 0 {
			out = append(out, frags)
		}
	}
	return out
}

// renderText joins fragments into plain text lines for the fallback
// extractor.
func renderText(fragRows [][]fragment) string {
	var sb strings.Builder
	for i, frags := range fragRows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, f := range frags {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(f.text)
		}
	}
	return sb.String()
}
