package drill

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/okian/draftboard/internal/domain/types"
)

// Run executes the full drill against a live service.
func Run(ctx context.Context, config *Config) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // drill data, not crypto
	c := newClient(config.BaseURL, config.Timeout)

	log.Printf("🏀 Generating %d ranking rows...", config.Players)
	content, _ := GenerateCSV(rng, config.Players)

	session, err := c.createSession(ctx)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	log.Printf("📋 Session %s created", session)

	size, err := c.uploadCSV(ctx, session, content)
	if err != nil {
		return fmt.Errorf("upload document: %w", err)
	}
	log.Printf("📤 Document uploaded, roster size %d", size)

	roster, err := c.board(ctx, session, "roster")
	if err != nil {
		return fmt.Errorf("read roster: %w", err)
	}
	if err := verifyRoster(roster); err != nil {
		return fmt.Errorf("roster verification: %w", err)
	}
	log.Printf("✅ Roster verified: %d players, sorted and deduplicated", len(roster))

	totalMoved := 0
	for round := 1; round <= config.Rounds; round++ {
		remaining, err := c.board(ctx, session, "remaining")
		if err != nil {
			return fmt.Errorf("round %d: read remaining: %w", round, err)
		}
		picks := config.Picks
		if picks > len(remaining) {
			picks = len(remaining)
		}
		names := make([]string, 0, picks)
		for _, row := range remaining[:picks] {
			names = append(names, row.Player)
		}
		if len(names) == 0 {
			break
		}

		moved, err := c.draft(ctx, session, names)
		if err != nil {
			return fmt.Errorf("round %d: draft: %w", round, err)
		}
		if moved != len(names) {
			return fmt.Errorf("round %d: drafted %d of %d picks", round, moved, len(names))
		}
		totalMoved += moved
		if config.Verbose {
			log.Printf("  round %d: drafted %v", round, names)
		}

		again, err := c.draft(ctx, session, names)
		if err != nil {
			return fmt.Errorf("round %d: redraft: %w", round, err)
		}
		if again != 0 {
			return fmt.Errorf("round %d: redraft moved %d players", round, again)
		}

		if err := checkPartition(ctx, c, session, roster); err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}
	}
	log.Printf("✅ Drafted %d players over %d rounds, partition held", totalMoved, config.Rounds)

	export, err := c.export(ctx, session, "remaining.csv")
	if err != nil {
		return fmt.Errorf("export remaining: %w", err)
	}
	lines := strings.Split(strings.TrimSpace(string(export)), "\n")
	if len(lines) == 0 || lines[0] != "Player,Team,Pos,Blend,ADP_Rank" {
		return fmt.Errorf("export header mismatch: %q", lines[0])
	}
	if got := len(lines) - 1; got != len(roster)-totalMoved {
		return fmt.Errorf("export carries %d rows, want %d", got, len(roster)-totalMoved)
	}
	log.Printf("✅ Export verified: %d remaining rows", len(lines)-1)

	if err := c.reset(ctx, session); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	remaining, err := c.board(ctx, session, "remaining")
	if err != nil {
		return fmt.Errorf("read remaining after reset: %w", err)
	}
	if len(remaining) != len(roster) {
		return fmt.Errorf("reset left %d of %d players remaining", len(remaining), len(roster))
	}
	drafted, err := c.board(ctx, session, "drafted")
	if err != nil {
		return fmt.Errorf("read drafted after reset: %w", err)
	}
	if len(drafted) != 0 {
		return fmt.Errorf("reset left %d players drafted", len(drafted))
	}
	log.Printf("✅ Reset verified, board restored")

	return nil
}

func checkPartition(ctx context.Context, c *client, session string, roster []types.Row) error {
	remaining, err := c.board(ctx, session, "remaining")
	if err != nil {
		return fmt.Errorf("read remaining: %w", err)
	}
	drafted, err := c.board(ctx, session, "drafted")
	if err != nil {
		return fmt.Errorf("read drafted: %w", err)
	}
	return verifyPartition(roster, remaining, drafted)
}
