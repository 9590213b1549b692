// Package drill exercises a running draft board service end to end: it
// generates a synthetic ranking CSV, uploads it, drafts players and
// verifies the board invariants after every step.
package drill

import "time"

// Config holds drill parameters.
type Config struct {
	// BaseURL of the service under test.
	BaseURL string

	// Players is the number of ranking rows to generate.
	Players int

	// Picks is the number of players to draft per round.
	Picks int

	// Rounds is the number of draft rounds to run before resetting.
	Rounds int

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// LogFile receives a copy of the drill output.
	LogFile string

	// Verbose enables per-pick logging.
	Verbose bool
}
