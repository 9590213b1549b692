package pipeline

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/okian/draftboard/internal/domain/extract"
	"github.com/okian/draftboard/internal/domain/model"
	"github.com/okian/draftboard/pkg/logger"
	"github.com/okian/draftboard/pkg/metrics"
)

// Pool extracts records from document pages with a bounded set of
// workers. Results keep page order no matter which worker finishes first.
type Pool struct {
	workers   int
	queueSize int
	logger    logger.Logger
}

// NewPool creates a Pool with configuration options.
func NewPool(opts ...Option) *Pool {
	p := &Pool{
		workers:   runtime.NumCPU(),
		queueSize: defaultQueueCapacity,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logger.Get().Named("pipeline")
	}
	return p
}

// Extract runs every page through both extractors and returns the pooled
// records in page order. A cancelled context returns the pages finished
// so far.
func (p *Pool) Extract(ctx context.Context, pages []model.Page) []model.RawRecord {
	if len(pages) == 0 {
		return nil
	}

	start := time.Now()
	defer func() {
		metrics.RecordExtractionLatency(float64(time.Since(start).Milliseconds()))
	}()

	workers := p.workers
	if workers > len(pages) {
		workers = len(pages)
	}
	if workers < 1 {
		workers = 1
	}
	metrics.UpdatePageWorkerCount(workers)

	q := NewInMemoryQueue(WithQueueCapacity(max(p.queueSize, len(pages))))
	results := make([][]model.RawRecord, len(pages))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.run(ctx, q, results)
		}()
	}

	for i, page := range pages {
		if !q.Enqueue(ctx, Job{Page: page, Index: i}) {
			break
		}
	}
	_ = q.Close()
	wg.Wait()

	var records []model.RawRecord
	for _, rs := range results {
		records = append(records, rs...)
	}
	p.logger.Debug(ctx, "pages extracted",
		logger.Int("pages", len(pages)),
		logger.Int("records", len(records)))
	return records
}

// run is the worker loop; it drains the queue until it closes or the
// context is cancelled.
func (p *Pool) run(ctx context.Context, q Queue, results [][]model.RawRecord) {
	jobs := q.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-jobs:
			if !ok {
				return
			}
			results[job.Index] = extractPage(job.Page)
		}
	}
}

// extractPage runs both extractors on the page and pools their output,
// table records first. A partially detected grid can miss rows that the
// text scan still sees; consolidation dedupes the overlap later.
func extractPage(page model.Page) []model.RawRecord {
	defer metrics.RecordPageProcessed()

	tableRecords := extract.FromTables(page)
	metrics.RecordRecordsExtracted("table", len(tableRecords))

	textRecords := extract.FromText(page)
	metrics.RecordRecordsExtracted("text", len(textRecords))

	return append(tableRecords, textRecords...)
}
