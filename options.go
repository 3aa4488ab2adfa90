package glshader

import "log/slog"

// Option configures a Program at construction.
type Option func(*options)

type options struct {
	logger       *slog.Logger
	autoActivate bool
}

func defaultOptions() options {
	return options{logger: slog.Default()}
}

// WithLogger sets the logger used for build diagnostics.
// A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithAutoActivate makes every uniform setter activate the program first.
// Without it callers must call Use before setting uniforms, and writes land
// on whichever program is current on the device.
func WithAutoActivate() Option {
	return func(o *options) {
		o.autoActivate = true
	}
}
