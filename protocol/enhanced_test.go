package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erelsgl/family-fair-allocation/fairness"
	"github.com/erelsgl/family-fair-allocation/family"
	famtest "github.com/erelsgl/family-fair-allocation/testing"
	"github.com/erelsgl/family-fair-allocation/types"
)

func TestEnhancedRWAV_Allocate(t *testing.T) {
	t.Run("single good passes the threshold", func(t *testing.T) {
		families, goods := famtest.EnhancedRWAVExample()

		var traces []string
		p := NewEnhancedRWAV(0.6, WithHooks(&types.Hooks{OnTrace: func(msg string) { traces = append(traces, msg) }}))
		bundles, err := p.Allocate(families, goods)
		require.NoError(t, err)
		require.Equal(t, famtest.Goods("y"), sorted(bundles[0]))
		require.Equal(t, famtest.Goods("v", "w", "x", "z"), sorted(bundles[1]))
		require.Equal(t, []string{"6 out of 10 members in Group 1 want y, so Group 1 gets y and Group 2 gets the rest"}, traces)
	})

	t.Run("role symmetry", func(t *testing.T) {
		families, goods := famtest.EnhancedRWAVExample()
		swapped := []family.Family{families[1], families[0]}

		bundles, err := NewEnhancedRWAV(0.6).Allocate(swapped, goods)
		require.NoError(t, err)
		require.Equal(t, famtest.Goods("v", "w", "x", "z"), sorted(bundles[0]))
		require.Equal(t, famtest.Goods("y"), sorted(bundles[1]))
	})

	t.Run("demo groups", func(t *testing.T) {
		families, goods := famtest.DemoGroups()
		bundles, err := NewEnhancedRWAV(0.6).Allocate(families, goods)
		require.NoError(t, err)
		require.Equal(t, famtest.Goods("v"), sorted(bundles[0]))
		require.Equal(t, famtest.Goods("w", "x", "y", "z"), sorted(bundles[1]))
	})

	t.Run("falls back to RWAV", func(t *testing.T) {
		families, goods := famtest.EnhancedRWAVExample()
		m := newRecordingMetrics()

		bundles, err := NewEnhancedRWAV(1, WithMetrics(m)).Allocate(families, goods)
		require.NoError(t, err)
		require.Equal(t, famtest.Goods("v", "w", "y"), sorted(bundles[0]))
		require.Equal(t, famtest.Goods("x", "z"), sorted(bundles[1]))
		require.Equal(t, 1, m.allocations[NameEnhancedRWAV])
		require.Equal(t, map[string]int{"Group 1": 3, "Group 2": 2}, m.turns)

		rwav, err := NewRWAV().Allocate(families, goods)
		require.NoError(t, err)
		require.Equal(t, rwav, bundles)
	})

	t.Run("both families qualify", func(t *testing.T) {
		c := fairness.OneOfBestC(1)
		f1 := family.New("Group 1", c, famtest.Binary("x", 2), famtest.Binary("y", 1))
		f2 := family.New("Group 2", c, famtest.Binary("x", 3), famtest.Binary("y", 1))
		goods := famtest.Goods("x", "y")

		// 3 of 4 beats 2 of 3, whichever family comes first
		bundles, err := NewEnhancedRWAV(0.5).Allocate([]family.Family{f1, f2}, goods)
		require.NoError(t, err)
		require.Equal(t, famtest.Goods("y"), sorted(bundles[0]))
		require.Equal(t, famtest.Goods("x"), sorted(bundles[1]))

		bundles, err = NewEnhancedRWAV(0.5).Allocate([]family.Family{f2, f1}, goods)
		require.NoError(t, err)
		require.Equal(t, famtest.Goods("x"), sorted(bundles[0]))
		require.Equal(t, famtest.Goods("y"), sorted(bundles[1]))

		// an exact tie goes to the first family
		bundles, err = NewEnhancedRWAV(0.5).Allocate([]family.Family{f1, f1}, goods)
		require.NoError(t, err)
		require.Equal(t, famtest.Goods("x"), sorted(bundles[0]))
		require.Equal(t, famtest.Goods("y"), sorted(bundles[1]))
	})

	t.Run("families without members never qualify", func(t *testing.T) {
		families, goods := famtest.RWAVExample()
		empty := family.New("Empty", fairness.OneOfBestC(2))

		bundles, err := NewEnhancedRWAV(0).Allocate([]family.Family{empty, families[1]}, goods)
		require.NoError(t, err)
		require.Equal(t, famtest.Goods("x", "y", "z"), sorted(bundles[0]))
		require.Equal(t, famtest.Goods("w"), sorted(bundles[1]))
	})

	t.Run("invalid input", func(t *testing.T) {
		families, goods := famtest.EnhancedRWAVExample()

		_, err := NewEnhancedRWAV(0.6).Allocate(families[:1], goods)
		require.ErrorIs(t, err, types.ErrPreconditionViolation)

		_, err = NewEnhancedRWAV(1.5).Allocate(families, goods)
		require.ErrorIs(t, err, types.ErrInvalidArgument)

		_, err = NewEnhancedRWAV(-0.1).Allocate(families, goods)
		require.ErrorIs(t, err, types.ErrInvalidArgument)
	})
}
