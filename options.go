package cthreadpool

// options holds configuration resolved from the Option values passed to
// New, following the functional-options idiom used throughout this
// corpus: each Option mutates a private struct through an unexported
// interface method so new options can be added without breaking callers.
type options struct {
	logger         *poolLogger
	queueCapacity  int
	onTaskPanic    func(recovered any)
	metricsEnabled bool
}

// Option configures a Pool at construction time.
type Option interface {
	apply(*options)
}

type optionFunc func(*options)

func (f optionFunc) apply(o *options) { f(o) }

// WithLogger installs a structured logger for worker/manager lifecycle
// events (worker start/stop, task panics, shutdown phases). Ring and slab
// growth is not logged. When not
// supplied, a disabled logger is used and logging costs nothing.
func WithLogger(l *poolLogger) Option {
	return optionFunc(func(o *options) { o.logger = l })
}

// WithQueueCapacity sets the initial capacity hint used to pre-size the
// task ring, event ring, and future slab. The rings round it up to a
// power of two (minimum 2); the slab uses it as given (minimum 1).
// A generous hint avoids early doubling under burst load; it does not
// bound how large the rings may grow.
func WithQueueCapacity(n int) Option {
	return optionFunc(func(o *options) { o.queueCapacity = n })
}

// WithOnTaskPanic registers a hook invoked (in addition to the log line
// always emitted) whenever a task function panics instead of returning
// normally.
func WithOnTaskPanic(fn func(recovered any)) Option {
	return optionFunc(func(o *options) { o.onTaskPanic = fn })
}

// WithMetrics enables P²-quantile tracking of task wait and run times,
// retrievable via Pool.Metrics.
func WithMetrics(enabled bool) Option {
	return optionFunc(func(o *options) { o.metricsEnabled = enabled })
}

func resolveOptions(opts []Option) *options {
	cfg := &options{queueCapacity: 16}
	for _, o := range opts {
		if o == nil {
			continue
		}
		o.apply(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = disabledLogger()
	}
	return cfg
}
