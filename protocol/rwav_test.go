package protocol

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erelsgl/family-fair-allocation/fairness"
	"github.com/erelsgl/family-fair-allocation/family"
	famtest "github.com/erelsgl/family-fair-allocation/testing"
	"github.com/erelsgl/family-fair-allocation/types"
	"github.com/erelsgl/family-fair-allocation/weight"
)

func TestRWAV_Allocate(t *testing.T) {
	t.Run("worked example", func(t *testing.T) {
		families, goods := famtest.RWAVExample()

		var traces []string
		type pick struct {
			turn   int
			family string
			good   types.Good
		}
		var picks []pick
		m := newRecordingMetrics()
		p := NewRWAV(
			WithEngine(weight.NewEngine()),
			WithLogger(famtest.NewTestLogger(t)),
			WithMetrics(m),
			WithHooks(&types.Hooks{
				OnTrace: func(msg string) { traces = append(traces, msg) },
				OnPick: func(turn int, family string, good types.Good) {
					picks = append(picks, pick{turn, family, good})
				},
			}),
		)

		bundles, err := p.Allocate(families, goods)
		require.NoError(t, err)
		require.Len(t, bundles, 2)
		require.Equal(t, famtest.Goods("x", "z"), sorted(bundles[0]))
		require.Equal(t, famtest.Goods("w", "y"), sorted(bundles[1]))

		require.Equal(t, []pick{
			{1, "Group 1", "z"},
			{2, "Group 2", "y"},
			{3, "Group 1", "x"},
			{4, "Group 2", "w"},
		}, picks)
		require.Contains(t, traces, "Turn #1: Group 1's turn to pick a good from [w x y z]:")
		require.Contains(t, traces, "Group 1 picks z")
		require.Contains(t, traces, "Turn #4: Group 2's turn to pick a good from [w]:")

		require.Equal(t, 1, m.allocations[NameRWAV])
		require.Zero(t, m.failures)
		require.Equal(t, map[string]int{"Group 1": 2, "Group 2": 2}, m.turns)
	})

	t.Run("input order and duplicates do not matter", func(t *testing.T) {
		families, _ := famtest.RWAVExample()
		bundles, err := NewRWAV().Allocate(families, famtest.Goods("z", "y", "x", "w", "x"))
		require.NoError(t, err)
		require.Equal(t, famtest.Goods("x", "z"), sorted(bundles[0]))
		require.Equal(t, famtest.Goods("w", "y"), sorted(bundles[1]))
	})

	t.Run("demo groups in both orders", func(t *testing.T) {
		families, goods := famtest.DemoGroups()

		bundles, err := NewRWAV().Allocate(families, goods)
		require.NoError(t, err)
		require.Equal(t, famtest.Goods("v", "x", "z"), sorted(bundles[0]))
		require.Equal(t, famtest.Goods("w", "y"), sorted(bundles[1]))

		bundles, err = NewRWAV().Allocate([]family.Family{families[1], families[0]}, goods)
		require.NoError(t, err)
		require.Equal(t, famtest.Goods("v", "x", "z"), sorted(bundles[0]))
		require.Equal(t, famtest.Goods("w", "y"), sorted(bundles[1]))
	})

	t.Run("three families partition the goods", func(t *testing.T) {
		demo, goods := famtest.DemoGroups()
		c := fairness.OneOfBestC(3)
		third := family.New("Group 3", c, famtest.Binary("vw", 1), famtest.Binary("xy", 1), famtest.Binary("z", 1))
		families := []family.Family{demo[0], demo[1], third}

		bundles, err := NewRWAV().Allocate(families, goods)
		require.NoError(t, err)
		requirePartition(t, goods, bundles)
		require.Equal(t, famtest.Goods("v", "y"), sorted(bundles[0]))
		require.Equal(t, famtest.Goods("w", "z"), sorted(bundles[1]))
		require.Equal(t, famtest.Goods("x"), sorted(bundles[2]))
	})

	t.Run("exactly one turn per good", func(t *testing.T) {
		families, goods := famtest.EnhancedRWAVExample()
		turns := 0
		p := NewRWAV(WithHooks(&types.Hooks{OnPick: func(int, string, types.Good) { turns++ }}))

		bundles, err := p.Allocate(families, goods)
		require.NoError(t, err)
		requirePartition(t, goods, bundles)
		require.Equal(t, len(goods), turns)
	})

	t.Run("no goods", func(t *testing.T) {
		families, _ := famtest.RWAVExample()
		bundles, err := NewRWAV().Allocate(families, nil)
		require.NoError(t, err)
		require.Len(t, bundles, 2)
		require.Zero(t, bundles[0].Len()+bundles[1].Len())
	})

	t.Run("no families", func(t *testing.T) {
		_, err := NewRWAV().Allocate(nil, famtest.Goods("x"))
		require.ErrorIs(t, err, types.ErrInvalidArgument)
	})

	t.Run("monotone members are rejected", func(t *testing.T) {
		families, goods := famtest.RWAVExample()
		mono := family.New("Monotone", fairness.OneOfBestC(2), mustMonotone(t, map[string]int{"w": 1}))
		m := newRecordingMetrics()

		_, err := NewRWAV(WithMetrics(m)).Allocate([]family.Family{families[0], mono}, goods)
		require.ErrorIs(t, err, types.ErrUnsupportedOperation)
		require.Equal(t, 1, m.failures)
	})

	t.Run("weights beyond two families need s <= 1", func(t *testing.T) {
		families, goods := famtest.AdditiveGroups()
		_, err := NewRWAV().Allocate(families, goods)
		require.ErrorIs(t, err, types.ErrUnsupportedOperation)
	})

	t.Run("deterministic", func(t *testing.T) {
		families, goods := famtest.DemoGroups()
		first, err := NewRWAV().Allocate(families, goods)
		require.NoError(t, err)

		reversed := slices.Clone(goods)
		slices.Reverse(reversed)
		for range 5 {
			again, err := NewRWAV().Allocate(families, reversed)
			require.NoError(t, err)
			require.Equal(t, first, again)
		}
	})
}
