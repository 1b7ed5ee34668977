package weight

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erelsgl/family-fair-allocation/types"
)

type countingMetrics struct {
	mu     sync.Mutex
	hits   int
	misses int
	size   int
}

func (c *countingMetrics) RecordWeightLookup(hit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hit {
		c.hits++
	} else {
		c.misses++
	}
}

func (c *countingMetrics) RecordWeightCacheSize(size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.size = size
}

func TestBalance(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		r, s, k int
		want    float64
	}{
		{0, 0, 2, 1},
		{1, 1, 2, 0.5},
		{1, 0, 2, 1},
		{0, 1, 2, 0},
		{3, 2, 2, 0.375},
		{0, -2, 2, 1},
		{-1, 1, 2, 0},
		{2, 2, 2, 0},
		{4, 2, 2, 0.625},
		{5, 3, 2, 0.3125},
		{7, 4, 2, 0.2734375},
		{5, 0, 3, 1},
		{0, 1, 3, 0},
		{2, 1, 3, 0.5},
		{4, 1, 3, 0.75},
	}

	for _, tc := range tests {
		got, err := e.Balance(tc.r, tc.s, tc.k)
		require.NoError(t, err)
		require.InDelta(t, tc.want, got, 1e-12, "B_%d(%d,%d)", tc.k, tc.r, tc.s)
	}
}

func TestWeight(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		r, s, k int
		want    float64
	}{
		{4, 0, 2, 0},
		{0, 2, 2, 0},
		{1, 1, 2, 0.5},
		{4, 2, 2, 0.25},
		{4, 3, 2, 0},
		{4, -2, 2, 0},
		{3, 2, 2, 0.375},
		{2, 1, 2, 0.25},
		{5, 0, 3, 0},
		{0, 1, 3, 0},
	}

	for _, tc := range tests {
		got, err := e.Weight(tc.r, tc.s, tc.k)
		require.NoError(t, err)
		require.InDelta(t, tc.want, got, 1e-12, "w_%d(%d,%d)", tc.k, tc.r, tc.s)
	}
}

func TestBalanceProperties(t *testing.T) {
	e := NewEngine()

	for r := -2; r <= 40; r++ {
		for s := -2; s <= 20; s++ {
			b, err := e.Balance(r, s, 2)
			require.NoError(t, err)
			require.GreaterOrEqual(t, b, 0.0)
			require.LessOrEqual(t, b, 1.0)

			w, err := e.Weight(r, s, 2)
			require.NoError(t, err)
			require.GreaterOrEqual(t, w, -1e-12, "weights never go negative: w(%d,%d)", r, s)
		}
	}
}

func TestBalanceErrors(t *testing.T) {
	e := NewEngine()

	_, err := e.Balance(3, 1, 1)
	require.ErrorIs(t, err, types.ErrInvalidArgument)

	_, err = e.Balance(3, 2, 3)
	require.ErrorIs(t, err, types.ErrUnsupportedOperation)

	_, err = e.Weight(3, 2, 4)
	require.ErrorIs(t, err, types.ErrUnsupportedOperation)

	// trivial cases never fail for k > 2
	b, err := e.Balance(1, 2, 3)
	require.NoError(t, err)
	require.Zero(t, b)
}

func TestCache(t *testing.T) {
	m := &countingMetrics{}
	e := NewEngine(WithMetrics(m))
	require.Zero(t, e.Len())

	_, err := e.Balance(6, 3, 2)
	require.NoError(t, err)
	require.Positive(t, e.Len())
	size := e.Len()
	require.Equal(t, size, m.size)

	// every smaller entry was tabulated along the way
	_, err = e.Balance(5, 2, 2)
	require.NoError(t, err)
	require.Equal(t, size, e.Len())
	require.Equal(t, 1, m.hits)
	require.Equal(t, 1, m.misses)

	// trivial cases bypass the cache
	_, err = e.Balance(0, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 2, m.hits+m.misses)
}

func TestConcurrentLookups(t *testing.T) {
	e := NewEngine()
	ref := NewEngine()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := 30; r >= 0; r-- {
				for s := 0; s <= 10; s++ {
					_, err := e.Balance(r, s, 2)
					require.NoError(t, err)
				}
			}
		}()
	}
	wg.Wait()

	for r := 0; r <= 30; r++ {
		for s := 0; s <= 10; s++ {
			got, err := e.Balance(r, s, 2)
			require.NoError(t, err)
			want, err := ref.Balance(r, s, 2)
			require.NoError(t, err)
			require.Equal(t, want, got, "B(%d,%d)", r, s)
		}
	}
}

func TestDefault(t *testing.T) {
	require.Same(t, Default(), Default())
}
