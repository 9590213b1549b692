package pdfreader

import "github.com/okian/draftboard/pkg/logger"

// Option applies a configuration option to the Reader.
type Option func(*Reader)

// WithCellGap sets the widest horizontal gap (in points) still treated as
// part of the same table cell.
func WithCellGap(gap float64) Option {
	return func(r *Reader) {
		if gap > 0 {
			r.cellGap = gap
		}
	}
}

// WithColumnGap sets the narrowest horizontal gap (in points) that opens a
// new table column.
func WithColumnGap(gap float64) Option {
	return func(r *Reader) {
		if gap > 0 {
			r.columnGap = gap
		}
	}
}

// WithLogger sets a custom logger for the reader.
func WithLogger(l logger.Logger) Option {
	return func(r *Reader) {
		if l != nil {
			r.logger = l
		}
	}
}
