package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/draftboard/internal/drill"
)

// Default configuration constants.
const (
	defaultPlayers      = 200
	defaultPicks        = 5
	defaultRounds       = 10
	defaultTimeout      = 30 * time.Second
	defaultDrillTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:9080", "Base URL of the service")
		players = flag.Int("players", defaultPlayers, "Number of ranking rows to generate")
		picks   = flag.Int("picks", defaultPicks, "Players drafted per round")
		rounds  = flag.Int("rounds", defaultRounds, "Draft rounds to run before resetting")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFile = flag.String("log", "", "Log file for drill output (default: drill_log_TIMESTAMP.log)")
		verbose = flag.Bool("verbose", false, "Enable per-pick logging")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		drill.ShowHelp()
		return
	}

	if err := drill.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultDrillTimeout)
	defer cancel()

	config := &drill.Config{
		BaseURL: *baseURL,
		Players: *players,
		Picks:   *picks,
		Rounds:  *rounds,
		Timeout: *timeout,
		LogFile: *logFile,
		Verbose: *verbose,
	}

	if err := drill.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Drill failed: " + err.Error() + "\n")
		return
	}
}
