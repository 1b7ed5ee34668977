package types

// MetricsCollector defines methods for recording allocation metrics.
//
// Implementations should be non-blocking. The weight cache may be filled from
// several goroutines at once, so all methods must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces.
type MetricsCollector interface {
	ProtocolMetrics
	WeightMetrics
}

// ProtocolMetrics defines metrics for allocation protocol runs.
type ProtocolMetrics interface {
	// RecordAllocation records a completed protocol run.
	RecordAllocation(protocol string, families, goods int, duration float64, success bool)

	// RecordTurn records a single good being handed to a family.
	RecordTurn(protocol string, family string)

	// RecordEquilibriumIterations records how many iterations a local-search
	// protocol used and whether it reached a fixed point.
	RecordEquilibriumIterations(protocol string, iterations int, converged bool)
}

// WeightMetrics defines metrics for the voting-weight cache.
type WeightMetrics interface {
	// RecordWeightLookup records a balance cache lookup.
	RecordWeightLookup(hit bool)

	// RecordWeightCacheSize records the current number of cached entries.
	RecordWeightCacheSize(size int)
}
