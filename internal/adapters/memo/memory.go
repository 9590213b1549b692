package memo

import (
	"context"
	"sync"

	"github.com/okian/draftboard/internal/domain/types"
	"github.com/okian/draftboard/pkg/metrics"
)

// defaultCapacity bounds the cache when no option overrides it.
const defaultCapacity = 64

// MemoryStore is an in-memory Store bounded by entry count. When full it
// evicts the oldest entry first.
type MemoryStore struct {
	mu       sync.RWMutex
	capacity int
	entries  map[string][]types.Row
	order    []string
}

// NewMemoryStore creates a MemoryStore with configuration options.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		capacity: defaultCapacity,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.entries = make(map[string][]types.Row, s.capacity)
	s.order = make([]string, 0, s.capacity)
	return s
}

// Get returns the roster cached under key, if any.
func (s *MemoryStore) Get(_ context.Context, key string) ([]types.Row, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roster, ok := s.entries[key]
	if ok {
		metrics.RecordParseCacheHit()
	} else {
		metrics.RecordParseCacheMiss()
	}
	return roster, ok
}

// Put caches roster under key, evicting the oldest entry when full.
// Existing keys are overwritten in place.
func (s *MemoryStore) Put(_ context.Context, key string, roster []types.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; ok {
		s.entries[key] = roster
		return
	}
	if len(s.order) >= s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.entries, oldest)
	}
	s.entries[key] = roster
	s.order = append(s.order, key)
	metrics.UpdateParseCacheLen(len(s.entries))
}

// Len returns the number of cached rosters.
func (s *MemoryStore) Len(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
