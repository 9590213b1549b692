// Package draft tracks which roster players have been drafted.
//
// The roster handed to a board is immutable input; the board only overlays
// a monotonically growing drafted set on top of it. The set grows via Move
// and can only shrink via a full Reset.
package draft

import (
	"context"
	"sync"

	"github.com/okian/draftboard/internal/domain/types"
)

// Board partitions an immutable roster into Remaining and Drafted.
type Board struct {
	mu      sync.RWMutex
	roster  []types.Row
	known   map[string]struct{}
	drafted map[string]struct{}
}

// NewBoard creates a board over roster with an empty drafted set.
func NewBoard(roster []types.Row) *Board {
	b := &Board{
		roster:  make([]types.Row, len(roster)),
		known:   make(map[string]struct{}, len(roster)),
		drafted: make(map[string]struct{}),
	}
	copy(b.roster, roster)
	for _, row := range roster {
		b.known[row.Player] = struct{}{}
	}
	return b
}

// Roster returns the full roster in its canonical order.
func (b *Board) Roster(ctx context.Context) []types.Row {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]types.Row, len(b.roster))
	copy(out, b.roster)
	return out
}

// Remaining returns the roster filtered to players not yet drafted,
// preserving roster order.
func (b *Board) Remaining(ctx context.Context) []types.Row {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.filter(false)
}

// Drafted returns the drafted players. Roster order is rank ascending with
// the name tie-break already applied, so filtering preserves it.
func (b *Board) Drafted(ctx context.Context) []types.Row {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.filter(true)
}

// Move unions players into the drafted set. Moving an already-drafted or
// unknown player is a no-op for that player; an empty selection is a no-op
// overall. Returns the number of players newly drafted.
func (b *Board) Move(ctx context.Context, players ...string) int {
	if len(players) == 0 {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	moved := 0
	for _, p := range players {
		if _, ok := b.known[p]; !ok {
			continue
		}
		if _, ok := b.drafted[p]; ok {
			continue
		}
		b.drafted[p] = struct{}{}
		moved++
	}
	return moved
}

// Reset clears the drafted set. Prior drafted history is not recoverable.
func (b *Board) Reset(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.drafted = make(map[string]struct{})
}

// Size returns the number of players in the roster.
func (b *Board) Size() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.roster)
}

// DraftedCount returns the number of drafted players.
func (b *Board) DraftedCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.drafted)
}

// filter must be called with at least a read lock held.
func (b *Board) filter(drafted bool) []types.Row {
	out := make([]types.Row, 0, len(b.roster))
	for _, row := range b.roster {
		if _, ok := b.drafted[row.Player]; ok == drafted {
			out = append(out, row)
		}
	}
	return out
}
