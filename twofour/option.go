package twofour

// Options configures a Tree.
type Options struct {
	logger          Logger
	checkInvariants bool
}

func defaultOptions() Options {
	return Options{
		logger: DiscardLogger{},
	}
}

// Option configures tree options using the functional options pattern.
type Option func(*Options)

// WithLogger routes the tree's split and rejection events to l.
// A nil logger keeps the default DiscardLogger.
func WithLogger(l Logger) Option {
	return func(opts *Options) {
		if l != nil {
			opts.logger = l
		}
	}
}

// WithInvariantChecks makes every Insert verify the whole tree with Check
// afterwards and panic on the first violation. Each insert becomes O(n), so
// keep it to tests and debugging sessions.
func WithInvariantChecks() Option {
	return func(opts *Options) {
		opts.checkInvariants = true
	}
}
