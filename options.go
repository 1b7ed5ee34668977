package famalloc

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/erelsgl/family-fair-allocation/weight"
)

// Option configures an Allocator with optional dependencies.
type Option func(*allocatorOptions)

// allocatorOptions holds optional Allocator configuration.
type allocatorOptions struct {
	hooks      *Hooks
	metrics    MetricsCollector
	logger     Logger
	engine     *weight.Engine
	registerer prometheus.Registerer
}

// WithHooks sets protocol observer hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	hooks := &famalloc.Hooks{
//	    OnTrace: func(msg string) { fmt.Println(msg) },
//	}
//	alloc, err := famalloc.New(cfg, famalloc.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *allocatorOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector, overriding Config.Metrics.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *allocatorOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger, overriding Config.Logging.
//
// Parameters:
//   - logger: Logger implementation
//
// Returns:
//   - Option: Functional option for New
func WithLogger(logger Logger) Option {
	return func(o *allocatorOptions) {
		o.logger = logger
	}
}

// WithEngine sets the voting-weight engine shared by the protocols.
//
// Without this option the Allocator uses weight.Default(), or a private
// engine reporting to the Prometheus collector when metrics are enabled.
func WithEngine(engine *weight.Engine) Option {
	return func(o *allocatorOptions) {
		o.engine = engine
	}
}

// WithRegisterer sets the Prometheus registerer used when Config.Metrics.Enabled
// is true (default prometheus.DefaultRegisterer).
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *allocatorOptions) {
		o.registerer = reg
	}
}
