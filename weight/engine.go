package weight

import (
	"fmt"
	"math"
	"sync"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/erelsgl/family-fair-allocation/internal/metrics"
	"github.com/erelsgl/family-fair-allocation/types"
)

type key struct {
	r, s, k int
}

// Engine computes and memoizes balances and weights.
//
// The cache only grows; entries are never evicted. Values are deterministic,
// so concurrent callers that race on the same entry store identical results.
type Engine struct {
	cache   *xsync.Map[key, float64]
	metrics types.WeightMetrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithMetrics sets the collector notified of cache lookups.
func WithMetrics(m types.WeightMetrics) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// NewEngine creates an engine with an empty cache.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		cache:   xsync.NewMap[key, float64](),
		metrics: metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the shared process-wide engine.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = NewEngine()
	})

	return defaultEngine
}

// Len returns the number of cached balances.
func (e *Engine) Len() int {
	return e.cache.Size()
}

// Balance returns B_k(r, s).
//
// Parameters:
//   - r: Number of remaining goods the agent wants
//   - s: Number of goods the agent still needs
//   - k: Number of families (at least 2)
//
// Returns:
//   - float64: The balance, in [0, 1]
//   - error: types.ErrInvalidArgument when k < 2, types.ErrUnsupportedOperation
//     when k > 2 and 1 < s <= r
func (e *Engine) Balance(r, s, k int) (float64, error) {
	if k < 2 {
		return 0, fmt.Errorf("%w: number of families must be at least 2, got %d", types.ErrInvalidArgument, k)
	}
	if b, ok := trivial(r, s); ok {
		return b, nil
	}

	if b, ok := e.cache.Load(key{r, s, k}); ok {
		e.metrics.RecordWeightLookup(true)
		return b, nil
	}
	e.metrics.RecordWeightLookup(false)

	var b float64
	if k == 2 {
		b = e.tabulate(r, s)
	} else {
		if s > 1 {
			return 0, fmt.Errorf("%w: with %d families weights are only known for s=1, got s=%d",
				types.ErrUnsupportedOperation, k, s)
		}
		b = 1 - math.Pow(2, -float64(r)/float64(k-1))
		e.cache.Store(key{r, s, k}, b)
	}
	e.metrics.RecordWeightCacheSize(e.cache.Size())

	return b, nil
}

// Weight returns the voting weight w_k(r, s) = B_k(r, s) - B_k(r-1, s).
func (e *Engine) Weight(r, s, k int) (float64, error) {
	hi, err := e.Balance(r, s, k)
	if err != nil {
		return 0, err
	}
	lo, err := e.Balance(r-1, s, k)
	if err != nil {
		return 0, err
	}

	return hi - lo, nil
}

// trivial handles the base cases shared by every k.
func trivial(r, s int) (float64, bool) {
	switch {
	case s <= 0:
		return 1, true
	case s > r:
		return 0, true
	default:
		return 0, false
	}
}

// tabulate fills B_2(i, j) for 0 <= i <= r, 1 <= j <= s bottom-up, caches
// every non-trivial entry and returns B_2(r, s).
func (e *Engine) tabulate(r, s int) float64 {
	rows := make([][]float64, r+1)
	at := func(i, j int) float64 {
		if b, ok := trivial(i, j); ok {
			return b
		}
		return rows[i][j]
	}

	for i := 0; i <= r; i++ {
		rows[i] = make([]float64, s+1)
		for j := 1; j <= s && j <= i; j++ {
			if b, ok := e.cache.Load(key{i, j, 2}); ok {
				rows[i][j] = b
				continue
			}
			b := min((at(i-1, j)+at(i-1, j-1))/2, at(i-2, j-1))
			rows[i][j] = b
			e.cache.Store(key{i, j, 2}, b)
		}
	}

	return rows[r][s]
}
