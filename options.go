package dateconv

import "log/slog"

type Options struct {
	Logger *slog.Logger // receives debug records for overrides and ancestor fallback; nil discards
}

type Option func(*Options)

// WithLogger sets the logger used for registry diagnostics.
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }
