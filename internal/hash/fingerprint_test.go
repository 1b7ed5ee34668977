package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"

	"github.com/erelsgl/family-fair-allocation/types"
)

func TestAllocation(t *testing.T) {
	names := []string{"Group 1", "Group 2"}
	a := []types.Bundle{types.NewBundle("x", "z"), types.NewBundle("w", "y")}

	t.Run("stable across bundle construction order", func(t *testing.T) {
		b := []types.Bundle{types.NewBundle("z", "x"), types.ParseBundle("y,w")}
		require.Equal(t, Allocation(names, a, 0), Allocation(names, b, 0))
	})

	t.Run("sensitive to ownership", func(t *testing.T) {
		swapped := []types.Bundle{a[1], a[0]}
		require.NotEqual(t, Allocation(names, a, 0), Allocation(names, swapped, 0))

		moved := []types.Bundle{types.NewBundle("x"), types.NewBundle("w", "y", "z")}
		require.NotEqual(t, Allocation(names, a, 0), Allocation(names, moved, 0))
	})

	t.Run("separators keep fields apart", func(t *testing.T) {
		left := Allocation([]string{"ab"}, []types.Bundle{types.NewBundle("c")}, 0)
		right := Allocation([]string{"a"}, []types.Bundle{types.NewBundle("bc")}, 0)
		require.NotEqual(t, left, right)
	})

	t.Run("seed", func(t *testing.T) {
		require.NotEqual(t, Allocation(names, a, 0), Allocation(names, a, 42))
		require.Equal(t, Allocation(names, a, 42), Allocation(names, a, 42))
	})

	t.Run("matches xxh3 of the canonical encoding", func(t *testing.T) {
		want := xxh3.HashString("Group 1\x1fx,z\x1eGroup 2\x1fw,y\x1e")
		require.Equal(t, Fingerprint(want), Allocation(names, a, 0))
	})

	t.Run("string", func(t *testing.T) {
		require.Equal(t, "00000000000000ff", Fingerprint(255).String())
		require.Len(t, Allocation(names, a, 0).String(), 16)
	})
}
