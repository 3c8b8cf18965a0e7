package ingest

import (
	"context"
	"fmt"
)

// Option configures the edge-list reader and writer.
type Option func(*Options)

// Options holds CSV dialect settings.
type Options struct {
	// Header reports whether the first row is a header (default true).
	Header bool
	// Comma is the field delimiter (default ',').
	Comma rune
	// Ctx is checked once per row; cancellation aborts the read.
	Ctx context.Context
}

// DefaultOptions returns a comma-separated dialect with a header row.
func DefaultOptions() Options {
	return Options{Header: true, Comma: ',', Ctx: context.Background()}
}

// WithHeader toggles the header row.
func WithHeader(on bool) Option {
	return func(o *Options) { o.Header = on }
}

// WithComma sets the field delimiter. Zero is ignored.
func WithComma(r rune) Option {
	return func(o *Options) {
		if r != 0 {
			o.Comma = r
		}
	}
}

// WithContext lets ctx abort a read between rows. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// interrupted returns the context error once o.Ctx is done.
func (o Options) interrupted() error {
	select {
	case <-o.Ctx.Done():
		return fmt.Errorf("ingest: read interrupted: %w", o.Ctx.Err())
	default:
		return nil
	}
}
