package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "test")

	t.Run("lazy registration", func(t *testing.T) {
		count, err := testutil.GatherAndCount(reg)
		require.NoError(t, err)
		require.Zero(t, count)
	})

	t.Run("protocol metrics", func(t *testing.T) {
		p.RecordAllocation("rwav", 2, 4, 0.002, true)
		p.RecordAllocation("rwav", 2, 4, 0.003, false)
		p.RecordTurn("rwav", "Group 1")
		p.RecordTurn("rwav", "Group 1")
		p.RecordEquilibriumIterations("two-thirds", 3, true)

		require.InDelta(t, 1, testutil.ToFloat64(p.allocations.WithLabelValues("rwav", "success")), 0)
		require.InDelta(t, 1, testutil.ToFloat64(p.allocations.WithLabelValues("rwav", "failure")), 0)
		require.InDelta(t, 2, testutil.ToFloat64(p.turns.WithLabelValues("rwav", "Group 1")), 0)
		require.InDelta(t, 1, testutil.ToFloat64(p.equilibriumConverged.WithLabelValues("two-thirds", "true")), 0)
	})

	t.Run("weight metrics", func(t *testing.T) {
		p.RecordWeightLookup(true)
		p.RecordWeightLookup(false)
		p.RecordWeightLookup(false)
		p.RecordWeightCacheSize(42)

		require.InDelta(t, 1, testutil.ToFloat64(p.weightLookups.WithLabelValues("hit")), 0)
		require.InDelta(t, 2, testutil.ToFloat64(p.weightLookups.WithLabelValues("miss")), 0)
		require.InDelta(t, 42, testutil.ToFloat64(p.weightCacheSize), 0)
	})

	t.Run("defaults", func(t *testing.T) {
		d := NewPrometheus(nil, "")
		require.Equal(t, "famalloc", d.namespace)
		require.Equal(t, prometheus.DefaultRegisterer, d.reg)
	})
}
