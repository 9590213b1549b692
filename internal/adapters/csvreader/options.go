package csvreader

import "github.com/okian/draftboard/pkg/logger"

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the logger used by the reader.
func WithLogger(l logger.Logger) Option {
	return func(r *Reader) {
		r.logger = l
	}
}
