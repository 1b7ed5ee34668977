package protocol

import (
	"fmt"

	"github.com/erelsgl/family-fair-allocation/internal/hooks"
	"github.com/erelsgl/family-fair-allocation/internal/logging"
	"github.com/erelsgl/family-fair-allocation/internal/metrics"
	"github.com/erelsgl/family-fair-allocation/types"
	"github.com/erelsgl/family-fair-allocation/weight"
)

// DefaultIterationFactor bounds the two-thirds protocol to this many
// iterations per agent.
const DefaultIterationFactor = 2

// Option configures a protocol.
type Option func(*config)

type config struct {
	engine          *weight.Engine
	hooks           types.Hooks
	logger          types.Logger
	metrics         types.ProtocolMetrics
	iterationFactor int
}

// newConfig applies opts and scopes the logger to the protocol name.
func newConfig(name string, opts []Option) config {
	c := config{
		engine:          weight.Default(),
		hooks:           hooks.NewNop(),
		logger:          logging.NewNop(),
		metrics:         metrics.NewNop(),
		iterationFactor: DefaultIterationFactor,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	c.logger = logging.With(c.logger, "protocol", name)

	return c
}

// WithEngine sets the voting-weight engine (default weight.Default()).
func WithEngine(e *weight.Engine) Option {
	return func(c *config) {
		if e != nil {
			c.engine = e
		}
	}
}

// WithHooks sets the observer callbacks. Nil callbacks are ignored.
func WithHooks(h *types.Hooks) Option {
	return func(c *config) {
		c.hooks = hooks.Fill(h)
	}
}

// WithLogger sets the logger. Turns are logged at Debug, runs at Info.
func WithLogger(l types.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m types.ProtocolMetrics) Option {
	return func(c *config) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithIterationFactor sets the two-thirds iteration bound per agent.
// Values below 1 are ignored.
func WithIterationFactor(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.iterationFactor = n
		}
	}
}

func (c *config) trace(format string, args ...any) {
	c.hooks.OnTrace(fmt.Sprintf(format, args...))
}
