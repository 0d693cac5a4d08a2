package validation

import "go.uber.org/zap"

type options struct {
	logger *zap.Logger
	name   string
}

// Option configures a Ruleset.
type Option func(*options)

// WithLogger sets the logger used to trace rule execution. Nil is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName labels the ruleset in log entries.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
