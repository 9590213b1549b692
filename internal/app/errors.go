package service

import "errors"

// Sentinel kinds for draft board errors.
var (
	ErrNotStarted       = errors.New("service not started")
	ErrSessionNotFound  = errors.New("session not found")
	ErrEmptySelection   = errors.New("empty player selection")
	ErrDocumentTooLarge = errors.New("document exceeds upload limit")
)
