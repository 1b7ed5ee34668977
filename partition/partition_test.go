package partition

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	t.Run("matches the documented order", func(t *testing.T) {
		got := slices.Collect(All([]int{1, 2, 3}))
		want := [][][]int{
			{{1, 2, 3}},
			{{1}, {2, 3}},
			{{1, 2}, {3}},
			{{2}, {1, 3}},
			{{1}, {2}, {3}},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("partitions mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("counts follow the Bell numbers", func(t *testing.T) {
		bell := []int{1, 1, 2, 5, 15, 52, 203, 877}
		for n, want := range bell {
			items := make([]int, n)
			for i := range items {
				items[i] = i
			}
			require.Len(t, slices.Collect(All(items)), want, "B(%d)", n)
		}
	})

	t.Run("every partition covers the input exactly once", func(t *testing.T) {
		items := []string{"v", "w", "x", "y", "z"}
		for p := range All(items) {
			var union []string
			for _, part := range p {
				require.NotEmpty(t, part, "parts are never empty")
				union = append(union, part...)
			}
			slices.Sort(union)
			require.Equal(t, items, union)
		}
	})

	t.Run("empty input has one partition with no parts", func(t *testing.T) {
		got := slices.Collect(All([]int{}))
		require.Len(t, got, 1)
		require.Empty(t, got[0])
	})

	t.Run("restartable and independent", func(t *testing.T) {
		seq := All([]int{1, 2, 3})
		first := slices.Collect(seq)
		first[0][0][0] = 99
		second := slices.Collect(seq)
		require.Equal(t, 1, second[0][0][0], "mutating output must not leak into later runs")
	})

	t.Run("early break stops generation", func(t *testing.T) {
		n := 0
		for range All([]int{1, 2, 3, 4, 5}) {
			n++
			if n == 3 {
				break
			}
		}
		require.Equal(t, 3, n)
	})
}

func TestAtMost(t *testing.T) {
	got := slices.Collect(AtMost([]int{1, 2, 3}, 2))
	want := [][][]int{
		{{1, 2, 3}},
		{{1}, {2, 3}},
		{{1, 2}, {3}},
		{{2}, {1, 3}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("partitions mismatch (-want +got):\n%s", diff)
	}

	for p := range AtMost([]int{1, 2, 3, 4, 5, 6}, 3) {
		require.LessOrEqual(t, len(p), 3)
	}

	require.Len(t, slices.Collect(AtMost([]int{1, 2, 3}, 1)), 1)
	require.Empty(t, slices.Collect(AtMost([]int{1, 2}, -1)))
}

func TestExactly(t *testing.T) {
	got := slices.Collect(Exactly([]int{1, 2, 3}, 2))
	want := [][][]int{
		{{1}, {2, 3}},
		{{1, 2}, {3}},
		{{2}, {1, 3}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("partitions mismatch (-want +got):\n%s", diff)
	}

	// Stirling numbers of the second kind: S(5,2)=15, S(5,3)=25.
	items := []int{1, 2, 3, 4, 5}
	require.Len(t, slices.Collect(Exactly(items, 2)), 15)
	require.Len(t, slices.Collect(Exactly(items, 3)), 25)
	require.Empty(t, slices.Collect(Exactly(items, 6)))
}

func TestCombinations(t *testing.T) {
	got := slices.Collect(Combinations([]string{"a", "b", "c", "d"}, 2))
	want := [][]string{{"a", "b"}, {"a", "c"}, {"a", "d"}, {"b", "c"}, {"b", "d"}, {"c", "d"}}
	require.Equal(t, want, got)

	require.Equal(t, [][]string{{}}, slices.Collect(Combinations([]string{"a"}, 0)))
	require.Empty(t, slices.Collect(Combinations([]string{"a"}, 2)))
	require.Empty(t, slices.Collect(Combinations([]string{"a"}, -1)))
}

func TestPowerset(t *testing.T) {
	got := slices.Collect(Powerset([]int{1, 2, 3}))
	want := [][]int{{}, {1}, {2}, {3}, {1, 2}, {1, 3}, {2, 3}, {1, 2, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("powerset mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, slices.Collect(Powerset(make([]int, 6))), 64)
}
