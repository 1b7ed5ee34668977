package metrics

import (
	"strconv"
	"sync"

	"github.com/erelsgl/family-fair-allocation/types"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing a
// PrometheusCollector that is never used leaves the registry untouched.
type PrometheusCollector struct {
	*NopMetrics

	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	// Protocol metrics
	allocations          *prometheus.CounterVec
	allocationDuration   *prometheus.HistogramVec
	allocationGoods      *prometheus.HistogramVec
	turns                *prometheus.CounterVec
	equilibriumIters     *prometheus.HistogramVec
	equilibriumConverged *prometheus.CounterVec

	// Weight metrics
	weightLookups   *prometheus.CounterVec
	weightCacheSize prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "famalloc" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "famalloc"
	}

	return &PrometheusCollector{NopMetrics: NewNop(), reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.allocations = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "protocol",
			Name:      "allocations_total",
			Help:      "Total protocol runs by protocol and result (success/failure).",
		}, []string{"protocol", "result"})

		p.allocationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "protocol",
			Name:      "allocation_duration_seconds",
			Help:      "Duration of protocol runs in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs .. ~26s
		}, []string{"protocol"})

		p.allocationGoods = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "protocol",
			Name:      "allocation_goods",
			Help:      "Number of goods per protocol run.",
			Buckets:   []float64{2, 4, 8, 16, 32, 64, 128},
		}, []string{"protocol"})

		p.turns = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "protocol",
			Name:      "turns_total",
			Help:      "Total goods handed out by protocol and family.",
		}, []string{"protocol", "family"})

		p.equilibriumIters = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "protocol",
			Name:      "equilibrium_iterations",
			Help:      "Iterations used by local-search protocols.",
			Buckets:   []float64{1, 2, 4, 8, 16, 32, 64},
		}, []string{"protocol"})

		p.equilibriumConverged = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "protocol",
			Name:      "equilibrium_runs_total",
			Help:      "Local-search runs by whether they reached a fixed point.",
		}, []string{"protocol", "converged"})

		p.weightLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "weight",
			Name:      "cache_lookups_total",
			Help:      "Balance cache lookups by result (hit/miss).",
		}, []string{"result"})

		p.weightCacheSize = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "weight",
			Name:      "cache_entries",
			Help:      "Current number of cached balance values.",
		})

		p.reg.MustRegister(p.allocations)
		p.reg.MustRegister(p.allocationDuration)
		p.reg.MustRegister(p.allocationGoods)
		p.reg.MustRegister(p.turns)
		p.reg.MustRegister(p.equilibriumIters)
		p.reg.MustRegister(p.equilibriumConverged)
		p.reg.MustRegister(p.weightLookups)
		p.reg.MustRegister(p.weightCacheSize)
	})
}

// ProtocolMetrics implementation

// RecordAllocation records a completed protocol run.
func (p *PrometheusCollector) RecordAllocation(protocol string, _ /* families */, goods int, duration float64, success bool) {
	p.ensureRegistered()
	result := "success"
	if !success {
		result = "failure"
	}
	p.allocations.WithLabelValues(protocol, result).Inc()
	p.allocationDuration.WithLabelValues(protocol).Observe(duration)
	p.allocationGoods.WithLabelValues(protocol).Observe(float64(goods))
}

// RecordTurn counts a good handed to family.
func (p *PrometheusCollector) RecordTurn(protocol, family string) {
	p.ensureRegistered()
	p.turns.WithLabelValues(protocol, family).Inc()
}

// RecordEquilibriumIterations observes the iterations of a local-search run.
func (p *PrometheusCollector) RecordEquilibriumIterations(protocol string, iterations int, converged bool) {
	p.ensureRegistered()
	p.equilibriumIters.WithLabelValues(protocol).Observe(float64(iterations))
	p.equilibriumConverged.WithLabelValues(protocol, strconv.FormatBool(converged)).Inc()
}

// WeightMetrics implementation

// RecordWeightLookup counts a cache hit or miss.
func (p *PrometheusCollector) RecordWeightLookup(hit bool) {
	p.ensureRegistered()
	result := "miss"
	if hit {
		result = "hit"
	}
	p.weightLookups.WithLabelValues(result).Inc()
}

// RecordWeightCacheSize sets the cache size gauge.
func (p *PrometheusCollector) RecordWeightCacheSize(size int) {
	p.ensureRegistered()
	p.weightCacheSize.Set(float64(size))
}
