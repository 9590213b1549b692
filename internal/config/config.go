// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - External errors are wrapped via this package's sentinel kinds.
package config

import (
	"context"
	"runtime"
)

// Default sizing constants.
const (
	defaultRosterCap      = 300
	defaultPageQueueSize  = 256
	defaultMemoSize       = 64
	defaultMaxUploadBytes = 16 << 20 // 16 MiB
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// RosterCap bounds the consolidated roster (top-N by blend score).
	RosterCap int `koanf:"roster_cap"`

	// PageWorkerCount sets the number of extraction workers.
	PageWorkerCount int `koanf:"page_worker_count"`

	// PageQueueSize bounds the in-memory page job queue.
	PageQueueSize int `koanf:"page_queue_size"`

	// MemoSize bounds the content-addressed parse cache (rosters kept).
	MemoSize int `koanf:"memo_size"`

	// MaxUploadBytes caps accepted document uploads.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":9080",
		RosterCap:       defaultRosterCap,
		PageWorkerCount: runtime.NumCPU(),
		PageQueueSize:   defaultPageQueueSize,
		MemoSize:        defaultMemoSize,
		MaxUploadBytes:  defaultMaxUploadBytes,
	}
}
