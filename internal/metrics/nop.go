package metrics

import "github.com/erelsgl/family-fair-allocation/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	p := protocol.NewRWAV(protocol.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// ProtocolMetrics implementation

// RecordAllocation discards the allocation metric.
func (n *NopMetrics) RecordAllocation(_ /* protocol */ string, _ /* families */, _ /* goods */ int, _ /* duration */ float64, _ /* success */ bool) {
	// No-op
}

// RecordTurn discards the turn metric.
func (n *NopMetrics) RecordTurn(_ /* protocol */, _ /* family */ string) {
	// No-op
}

// RecordEquilibriumIterations discards the equilibrium iteration metric.
func (n *NopMetrics) RecordEquilibriumIterations(_ /* protocol */ string, _ /* iterations */ int, _ /* converged */ bool) {
	// No-op
}

// WeightMetrics implementation

// RecordWeightLookup discards the cache lookup metric.
func (n *NopMetrics) RecordWeightLookup(_ /* hit */ bool) {
	// No-op
}

// RecordWeightCacheSize discards the cache size metric.
func (n *NopMetrics) RecordWeightCacheSize(_ /* size */ int) {
	// No-op
}
