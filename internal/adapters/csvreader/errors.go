package csvreader

import "errors"

var (
	// ErrEmptyDocument is returned when the document has no bytes.
	ErrEmptyDocument = errors.New("empty document")
	// ErrMalformedDocument is returned when the CSV stream cannot be parsed.
	ErrMalformedDocument = errors.New("malformed csv document")
)
