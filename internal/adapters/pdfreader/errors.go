package pdfreader

import "errors"

// Sentinel kinds for PDF extraction errors.
var (
	ErrEmptyDocument = errors.New("empty document")
	ErrOpenDocument  = errors.New("could not open document")
)
