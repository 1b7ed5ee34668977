package valuation

import (
	"fmt"
	"maps"
	"slices"

	"github.com/erelsgl/family-fair-allocation/types"
)

// Monotone is a valuation given by an explicit table from bundles to values.
//
// Bundles missing from the table have no value; querying them fails with
// types.ErrUndefinedValuation. The empty bundle is always worth 0.
type Monotone struct {
	base
	table    map[string]int
	universe types.Bundle
}

var _ Valuation = (*Monotone)(nil)

// NewMonotone creates a monotone valuation from a table keyed by bundle.
//
// Keys use types.ParseBundle syntax, so "x,y" is the bundle {x, y}. The total
// value is the largest value in the table, which for a monotone table is the
// value of the union of all listed bundles. The empty bundle is worth 0
// whether or not the table lists it.
//
// Parameters:
//   - table: Bundle (comma-separated goods) to value
//   - opts: Optional configuration (WithCardinality)
//
// Returns:
//   - *Monotone: The valuation
//   - error: types.ErrInvalidArgument for a negative value, a non-zero empty
//     bundle, or a listed bundle worth more than a listed superset
//
// Example:
//
//	a, err := valuation.NewMonotone(map[string]int{"x": 1, "y": 2, "x,y": 4})
//	v, _ := a.Value(types.NewBundle("x", "y")) // 4
func NewMonotone(table map[string]int, opts ...Option) (*Monotone, error) {
	m := &Monotone{
		base:     newBase(opts),
		table:    make(map[string]int, len(table)+1),
		universe: types.NewBundle(),
	}

	bundles := make(map[string]types.Bundle, len(table))
	for key, value := range table {
		bundle := types.ParseBundle(key)
		switch {
		case value < 0:
			return nil, fmt.Errorf("%w: bundle %s has negative value %d", types.ErrInvalidArgument, bundle, value)
		case bundle.Len() == 0 && value != 0:
			return nil, fmt.Errorf("%w: empty bundle must be worth 0, got %d", types.ErrInvalidArgument, value)
		}
		m.table[bundle.Key()] = value
		bundles[bundle.Key()] = bundle
		m.universe = m.universe.Union(bundle)
		m.totalValue = max(m.totalValue, value)
	}
	m.table[""] = 0

	keys := slices.Sorted(maps.Keys(bundles))
	for _, small := range keys {
		for _, large := range keys {
			if small == large || !isSubset(bundles[small], bundles[large]) {
				continue
			}
			if m.table[small] > m.table[large] {
				return nil, fmt.Errorf("%w: %s is worth %d but its superset %s only %d",
					types.ErrInvalidArgument, bundles[small], m.table[small], bundles[large], m.table[large])
			}
		}
	}

	return m, nil
}

func isSubset(small, large types.Bundle) bool {
	if small.Len() > large.Len() {
		return false
	}
	for g := range small {
		if !large.Contains(g) {
			return false
		}
	}

	return true
}

// Universe returns the union of all bundles in the table.
func (m *Monotone) Universe() types.Bundle {
	return m.universe.Clone()
}

// Value looks the bundle up in the table. Bundles holding a good outside the
// universe are undefined even when their key happens to match a table entry.
func (m *Monotone) Value(bundle types.Bundle) (int, error) {
	for g := range bundle {
		if !m.universe.Contains(g) {
			return 0, fmt.Errorf("%w: %s", types.ErrUndefinedValuation, bundle)
		}
	}
	v, ok := m.table[bundle.Key()]
	if !ok {
		return 0, fmt.Errorf("%w: %s", types.ErrUndefinedValuation, bundle)
	}

	return v, nil
}

// ValueExceptBestC tries every way of removing c goods. The cost is C(|bundle|, c) lookups.
func (m *Monotone) ValueExceptBestC(bundle types.Bundle, c int) (int, error) {
	return exceptBestSearch(m, bundle, c)
}

// ValueExceptWorstC tries every way of removing c goods and keeps the best remainder.
func (m *Monotone) ValueExceptWorstC(bundle types.Bundle, c int) (int, error) {
	return exceptWorstSearch(m, bundle, c)
}

// MaximinShare enumerates the partitions of bundle; the cost grows with the Bell number of |bundle|.
func (m *Monotone) MaximinShare(bundle types.Bundle, c int) (int, error) {
	return maximinSearch(m, bundle, c)
}

func (m *Monotone) String() string {
	return fmt.Sprintf("%d agent%s with monotone valuations", m.cardinality, plural(m.cardinality))
}
