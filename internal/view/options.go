package view

import (
	"io"
	"log/slog"
)

type options struct {
	logger   *slog.Logger
	filter   Filter
	onChange func()
}

// Option configures a Controller.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		filter: All,
	}
}

// WithLogger sets the logger mutations are reported to at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFilter sets the initial filter.
func WithFilter(f Filter) Option {
	return func(o *options) {
		o.filter = f
	}
}

// WithOnChange registers fn to run after every state change.
// Renderers use it to know when to redraw.
func WithOnChange(fn func()) Option {
	return func(o *options) {
		o.onChange = fn
	}
}
