package service

import "github.com/okian/draftboard/pkg/logger"

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithRosterCap bounds the consolidated roster size.
func WithRosterCap(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.rosterCap = n
		}
	}
}

// WithWorkerCount sets the number of page extraction workers.
func WithWorkerCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workerCount = n
		}
	}
}

// WithQueueSize sets the page queue capacity.
func WithQueueSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.queueSize = n
		}
	}
}

// WithMemoSize bounds the parsed-roster cache.
func WithMemoSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.memoSize = n
		}
	}
}

// WithMaxUploadBytes caps accepted document size.
func WithMaxUploadBytes(n int64) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxUploadBytes = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
