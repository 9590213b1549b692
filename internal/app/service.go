// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/okian/draftboard/internal/adapters/csvreader"
	"github.com/okian/draftboard/internal/adapters/memo"
	"github.com/okian/draftboard/internal/adapters/pdfreader"
	"github.com/okian/draftboard/internal/adapters/pipeline"
	"github.com/okian/draftboard/internal/domain/draft"
	"github.com/okian/draftboard/internal/domain/roster"
	"github.com/okian/draftboard/internal/domain/types"
	"github.com/okian/draftboard/pkg/logger"
	"github.com/okian/draftboard/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultQueueSize      = 256
	defaultMemoSize       = 64
	defaultMaxUploadBytes = 16 << 20
)

// Stats summarizes the service state for the stats endpoint.
type Stats struct {
	Sessions       int `json:"sessions"`
	CachedRosters  int `json:"cached_rosters"`
	WorkerCount    int `json:"worker_count"`
	RosterCapacity int `json:"roster_capacity"`
}

// Service owns the draft sessions and runs uploads through the
// extraction pipeline.
type Service struct {
	mu sync.RWMutex

	// Core components
	cache  memo.Store
	pdf    *pdfreader.Reader
	csv    *csvreader.Reader
	pool   *pipeline.Pool
	boards map[string]*draft.Board

	// Configuration
	rosterCap      int
	workerCount    int
	queueSize      int
	memoSize       int
	maxUploadBytes int64

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		rosterCap:      roster.DefaultCap,
		workerCount:    runtime.NumCPU(),
		queueSize:      defaultQueueSize,
		memoSize:       defaultMemoSize,
		maxUploadBytes: defaultMaxUploadBytes,
		boards:         make(map[string]*draft.Board),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.cache = memo.NewMemoryStore(
		memo.WithCapacity(s.memoSize),
	)
	s.pdf = pdfreader.New(
		pdfreader.WithLogger(s.logger.Named("pdfreader")),
	)
	s.csv = csvreader.New(
		csvreader.WithLogger(s.logger.Named("csvreader")),
	)
	s.pool = pipeline.NewPool(
		pipeline.WithWorkerCount(s.workerCount),
		pipeline.WithQueueSize(s.queueSize),
		pipeline.WithLogger(s.logger.Named("pipeline")),
	)

	s.started = true
	s.logger.Info(ctx, "draft board service started",
		logger.Int("workers", s.workerCount),
		logger.Int("rosterCap", s.rosterCap),
		logger.Int("memoSize", s.memoSize),
	)
	return nil
}

// Stop shuts the service down and drops every session.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.boards = make(map[string]*draft.Board)
	metrics.UpdateSessionsActive(0)
	s.started = false
	s.logger.Info(context.Background(), "draft board service stopped")
}

// CreateSession opens a new empty draft session and returns its id.
func (s *Service) CreateSession(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return "", ErrNotStarted
	}
	id := uuid.NewString()
	s.boards[id] = nil
	metrics.UpdateSessionsActive(len(s.boards))
	s.logger.Info(ctx, "session created", logger.String("session", id))
	return id, nil
}

// DropSession removes a session and its board.
func (s *Service) DropSession(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.boards[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.boards, id)
	metrics.UpdateSessionsActive(len(s.boards))
	s.logger.Info(ctx, "session dropped", logger.String("session", id))
	return nil
}

// LoadPDF builds a session's board from a PDF document and returns the
// roster size. Re-uploading identical bytes reuses the cached roster.
func (s *Service) LoadPDF(ctx context.Context, id string, content []byte) (int, error) {
	if int64(len(content)) > s.maxUploadBytes {
		return 0, ErrDocumentTooLarge
	}

	key := memo.Digest("pdf", content)
	rows, ok := s.cache.Get(ctx, key)
	if !ok {
		pages, err := s.pdf.Pages(ctx, content)
		if err != nil {
			return 0, fmt.Errorf("reading pdf: %w", err)
		}
		records := s.pool.Extract(ctx, pages)
		rows = roster.Consolidate(records, s.rosterCap)
		s.cache.Put(ctx, key, rows)
	}
	return len(rows), s.install(ctx, id, rows)
}

// LoadCSV builds a session's board from a CSV document and returns the
// roster size.
func (s *Service) LoadCSV(ctx context.Context, id string, content []byte) (int, error) {
	if int64(len(content)) > s.maxUploadBytes {
		return 0, ErrDocumentTooLarge
	}

	key := memo.Digest("csv", content)
	rows, ok := s.cache.Get(ctx, key)
	if !ok {
		records, err := s.csv.Records(ctx, content)
		if err != nil {
			return 0, fmt.Errorf("reading csv: %w", err)
		}
		rows = roster.Consolidate(records, s.rosterCap)
		s.cache.Put(ctx, key, rows)
	}
	return len(rows), s.install(ctx, id, rows)
}

// install replaces a session's board with a fresh one built from rows.
// Loading a document resets any draft progress.
func (s *Service) install(ctx context.Context, id string, rows []types.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.boards[id]; !ok {
		return ErrSessionNotFound
	}
	s.boards[id] = draft.NewBoard(rows)
	metrics.RecordRosterBuilt(len(rows))
	s.logger.Info(ctx, "roster installed",
		logger.String("session", id),
		logger.Int("size", len(rows)))
	return nil
}

// Roster returns the session's full consolidated roster.
func (s *Service) Roster(ctx context.Context, id string) ([]types.Row, error) {
	board, err := s.board(id)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return []types.Row{}, nil
	}
	return board.Roster(ctx), nil
}

// Remaining returns the undrafted rows in roster order.
func (s *Service) Remaining(ctx context.Context, id string) ([]types.Row, error) {
	board, err := s.board(id)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return []types.Row{}, nil
	}
	return board.Remaining(ctx), nil
}

// Drafted returns the drafted rows in roster order.
func (s *Service) Drafted(ctx context.Context, id string) ([]types.Row, error) {
	board, err := s.board(id)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return []types.Row{}, nil
	}
	return board.Drafted(ctx), nil
}

// MoveToDrafted marks players as drafted and returns how many moved.
// Unknown and already-drafted names are skipped.
func (s *Service) MoveToDrafted(ctx context.Context, id string, players []string) (int, error) {
	if len(players) == 0 {
		return 0, ErrEmptySelection
	}
	board, err := s.board(id)
	if err != nil {
		return 0, err
	}
	if board == nil {
		return 0, nil
	}
	moved := board.Move(ctx, players...)
	metrics.RecordDraftMoves(moved)
	return moved, nil
}

// ResetDraft returns every drafted player to the remaining pool.
func (s *Service) ResetDraft(ctx context.Context, id string) error {
	board, err := s.board(id)
	if err != nil {
		return err
	}
	if board != nil {
		board.Reset(ctx)
		metrics.RecordDraftReset()
	}
	return nil
}

// GetStats reports current service counters.
func (s *Service) GetStats(ctx context.Context) Stats {
	s.mu.RLock()
	sessions := len(s.boards)
	cache := s.cache
	s.mu.RUnlock()

	cached := 0
	if cache != nil {
		cached = cache.Len(ctx)
	}
	return Stats{
		Sessions:       sessions,
		CachedRosters:  cached,
		WorkerCount:    s.workerCount,
		RosterCapacity: s.rosterCap,
	}
}

func (s *Service) board(id string) (*draft.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	board, ok := s.boards[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return board, nil
}
