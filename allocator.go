package famalloc

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/erelsgl/family-fair-allocation/fairness"
	"github.com/erelsgl/family-fair-allocation/family"
	"github.com/erelsgl/family-fair-allocation/internal/hash"
	"github.com/erelsgl/family-fair-allocation/internal/logging"
	"github.com/erelsgl/family-fair-allocation/internal/metrics"
	"github.com/erelsgl/family-fair-allocation/protocol"
	"github.com/erelsgl/family-fair-allocation/weight"
)

// Allocator runs the configured allocation protocol and evaluates its results.
//
// An Allocator is safe for concurrent use: protocols keep their state on the
// stack and the shared weight engine is safe for concurrent fills.
type Allocator struct {
	cfg      Config
	protocol protocol.Protocol
	engine   *weight.Engine
	logger   Logger
	metrics  MetricsCollector
}

// Result is the outcome of a single allocation.
type Result struct {
	// Protocol is the name of the protocol that produced the allocation.
	Protocol string `json:"protocol" yaml:"protocol"`

	// Families are the family names, in input order.
	Families []string `json:"families" yaml:"families"`

	// Bundles holds one bundle per family, in input order.
	Bundles []Bundle `json:"-" yaml:"-"`

	// Descriptions renders each bundle with its satisfied member count.
	Descriptions []string `json:"descriptions" yaml:"descriptions"`

	// Fingerprint is a 64-bit XXH3 hash of the allocation in hex. Equal
	// allocations of equally named families share a fingerprint.
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
}

// New creates an Allocator.
//
// Missing configuration values are filled with SetDefaults before validation.
//
// Parameters:
//   - cfg: Allocator configuration
//   - opts: Optional dependencies (WithLogger, WithMetrics, WithHooks, WithEngine)
//
// Returns:
//   - *Allocator: Ready-to-use allocator
//   - error: ErrInvalidConfig if the configuration is invalid
//
// Example:
//
//	cfg := famalloc.DefaultConfig()
//	cfg.Protocol = "enhanced-rwav"
//	alloc, err := famalloc.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := alloc.Allocate(families, goods)
func New(cfg Config, opts ...Option) (*Allocator, error) {
	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := allocatorOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	logger := o.logger
	if logger == nil {
		l, err := logging.New(logging.Options{
			Level:   cfg.Logging.Level,
			Format:  cfg.Logging.Format,
			Backend: cfg.Logging.Backend,
			Output:  os.Stderr,
		})
		if err != nil {
			return nil, err
		}
		logger = l
	}

	collector := o.metrics
	if collector == nil {
		if cfg.Metrics.Enabled {
			collector = metrics.NewPrometheus(o.registerer, cfg.Metrics.Namespace)
		} else {
			collector = metrics.NewNop()
		}
	}

	engine := o.engine
	if engine == nil {
		if cfg.Metrics.Enabled || o.metrics != nil {
			engine = weight.NewEngine(weight.WithMetrics(collector))
		} else {
			engine = weight.Default()
		}
	}

	p, err := protocol.ByName(cfg.Protocol, cfg.Threshold,
		protocol.WithEngine(engine),
		protocol.WithHooks(o.hooks),
		protocol.WithLogger(logger),
		protocol.WithMetrics(collector),
		protocol.WithIterationFactor(cfg.TwoThirds.IterationFactor),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &Allocator{
		cfg:      cfg,
		protocol: p,
		engine:   engine,
		logger:   logger,
		metrics:  collector,
	}, nil
}

// Protocol returns the protocol the allocator runs.
func (a *Allocator) Protocol() Protocol {
	return a.protocol
}

// Engine returns the voting-weight engine shared by the allocator's protocol.
func (a *Allocator) Engine() *weight.Engine {
	return a.engine
}

// Metrics returns the collector the allocator reports to.
func (a *Allocator) Metrics() MetricsCollector {
	return a.metrics
}

// Config returns a copy of the allocator's configuration.
func (a *Allocator) Config() Config {
	return a.cfg
}

// Allocate divides goods among families with the configured protocol.
//
// Parameters:
//   - families: Families in turn order
//   - goods: Goods to allocate
//
// Returns:
//   - *Result: Bundles, descriptions and fingerprint
//   - error: Protocol error (e.g., ErrPreconditionViolation, ErrUnsupportedOperation)
func (a *Allocator) Allocate(families []Family, goods []Good) (*Result, error) {
	bundles, err := a.protocol.Allocate(families, goods)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.protocol.Name(), err)
	}

	res := &Result{
		Protocol:     a.protocol.Name(),
		Families:     make([]string, len(families)),
		Bundles:      bundles,
		Descriptions: make([]string, len(families)),
	}
	for i, f := range families {
		res.Families[i] = f.Name
		res.Descriptions[i] = f.AllocationDescription(bundles[i])
	}
	res.Fingerprint = hash.Allocation(res.Families, bundles, 0).String()

	a.logger.Debug("allocation fingerprint",
		"protocol", res.Protocol,
		"fingerprint", res.Fingerprint,
	)

	return res, nil
}

// Evaluate builds the fairness report of an allocation.
//
// Members are evaluated concurrently with Config.Report.Workers workers.
//
// Parameters:
//   - ctx: Context for cancellation
//   - families: Families in allocation order
//   - bundles: One bundle per family
//
// Returns:
//   - *Report: Per-member fairness report
//   - error: ErrInvalidArgument on a length mismatch, ctx.Err() on cancellation
func (a *Allocator) Evaluate(ctx context.Context, families []Family, bundles []Bundle) (*Report, error) {
	report, err := fairness.Evaluate(ctx, families, bundles,
		fairness.WithWorkers(a.cfg.Report.Workers),
		fairness.WithMMSApproximation(a.cfg.Report.MMSApproximation),
	)
	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			a.logger.Error("fairness evaluation failed", "error", err)
		}
		return nil, err
	}

	satisfied, total := report.Satisfied()
	a.logger.Info("fairness evaluated", "satisfied", satisfied, "members", total)

	return report, nil
}

// AllocateAndEvaluate runs Allocate followed by Evaluate on its bundles.
func (a *Allocator) AllocateAndEvaluate(ctx context.Context, families []Family, goods []Good) (*Result, *Report, error) {
	res, err := a.Allocate(families, goods)
	if err != nil {
		return nil, nil, err
	}

	report, err := a.Evaluate(ctx, families, res.Bundles)
	if err != nil {
		return res, nil, err
	}

	return res, report, nil
}

// NewFamily creates a family. It is a shorthand for family.New.
func NewFamily(name string, criterion FairnessCriterion, members ...Valuation) Family {
	return family.New(name, criterion, members...)
}
