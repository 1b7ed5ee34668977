package valuation

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/erelsgl/family-fair-allocation/partition"
	"github.com/erelsgl/family-fair-allocation/types"
)

// Valuation is an agent's (or a group of identical agents') valuation of bundles.
//
// The interface is closed: only the variants in this package implement it.
type Valuation interface {
	fmt.Stringer

	// TotalValue returns the value of the whole goods universe.
	TotalValue() int

	// Cardinality returns how many identical agents this valuation represents.
	Cardinality() int

	// Universe returns the goods this valuation is defined over.
	Universe() types.Bundle

	// Value returns the value of bundle.
	Value(bundle types.Bundle) (int, error)

	// ValueExceptBestC returns min over G ⊆ bundle with |G| ≤ c of Value(bundle − G),
	// or 0 when the bundle has at most c goods.
	ValueExceptBestC(bundle types.Bundle, c int) (int, error)

	// ValueExceptWorstC returns the value of bundle after dropping its c least
	// valuable goods, or 0 when the bundle has at most c goods.
	ValueExceptWorstC(bundle types.Bundle, c int) (int, error)

	// MaximinShare returns the 1-out-of-c maximin share of bundle: the largest
	// value of the worst part over all partitions of bundle into c parts.
	MaximinShare(bundle types.Bundle, c int) (int, error)

	sealed()
}

// DesiredGoodsValuation is a Valuation that can list the goods it values positively.
//
// Weighted approval voting and PROPc need this; Monotone valuations do not provide it.
type DesiredGoodsValuation interface {
	Valuation

	// DesiredGoods returns the goods with strictly positive value.
	DesiredGoods() types.Bundle
}

// Option configures a valuation.
type Option func(*base)

// WithCardinality sets how many identical agents the valuation represents.
// Values below 1 are treated as 1.
func WithCardinality(n int) Option {
	return func(b *base) {
		b.cardinality = n
	}
}

type base struct {
	cardinality int
	totalValue  int
}

func newBase(opts []Option) base {
	b := base{cardinality: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&b)
		}
	}
	if b.cardinality < 1 {
		b.cardinality = 1
	}

	return b
}

// Cardinality returns how many identical agents the valuation represents.
func (b *base) Cardinality() int { return b.cardinality }

// TotalValue returns the value of the whole goods universe.
func (b *base) TotalValue() int { return b.totalValue }

func (b *base) sealed() {}

func checkC(c int) error {
	if c < 0 {
		return fmt.Errorf("%w: c must be non-negative, got %d", types.ErrInvalidArgument, c)
	}

	return nil
}

// exceptBestSearch removes every c-subset of bundle and keeps the minimum value.
func exceptBestSearch(v Valuation, bundle types.Bundle, c int) (int, error) {
	if err := checkC(c); err != nil {
		return 0, err
	}
	if bundle.Len() <= c {
		return 0, nil
	}

	best := -1
	for removed := range partition.Combinations(bundle.Sorted(), c) {
		val, err := v.Value(bundle.Difference(types.NewBundle(removed...)))
		if err != nil {
			return 0, err
		}
		if best < 0 || val < best {
			best = val
		}
	}

	return best, nil
}

// exceptWorstSearch removes every c-subset of bundle and keeps the maximum value.
func exceptWorstSearch(v Valuation, bundle types.Bundle, c int) (int, error) {
	if err := checkC(c); err != nil {
		return 0, err
	}
	if bundle.Len() <= c {
		return 0, nil
	}

	worst := 0
	for removed := range partition.Combinations(bundle.Sorted(), c) {
		val, err := v.Value(bundle.Difference(types.NewBundle(removed...)))
		if err != nil {
			return 0, err
		}
		worst = max(worst, val)
	}

	return worst, nil
}

// maximinSearch enumerates the partitions of bundle into at most c parts.
// Partitions with fewer than c parts cannot guarantee c shares and count as 0.
func maximinSearch(v Valuation, bundle types.Bundle, c int) (int, error) {
	if c < 1 {
		return 0, fmt.Errorf("%w: maximin share needs c >= 1, got %d", types.ErrInvalidArgument, c)
	}

	result := 0
	for p := range partition.AtMost(bundle.Sorted(), c) {
		if len(p) < c {
			continue
		}

		worst := -1
		for _, part := range p {
			val, err := v.Value(types.NewBundle(part...))
			if err != nil {
				return 0, err
			}
			if worst < 0 || val < worst {
				worst = val
			}
		}
		result = max(result, worst)
	}

	return result, nil
}

// sortByGoodValue orders goods by their individual value, descending when
// best is true and ascending otherwise. Equal values keep ascending good order.
func sortByGoodValue(bundle types.Bundle, goodValue func(types.Good) int, best bool) []types.Good {
	goods := bundle.Sorted()
	slices.SortStableFunc(goods, func(a, b types.Good) int {
		if best {
			return cmp.Compare(goodValue(b), goodValue(a))
		}

		return cmp.Compare(goodValue(a), goodValue(b))
	})

	return goods
}

// exceptClosedForm drops the c best (or worst) goods by individual value and
// sums the rest. Valid only for valuations that are additive over goods.
func exceptClosedForm(bundle types.Bundle, c int, goodValue func(types.Good) int, best bool) (int, error) {
	if err := checkC(c); err != nil {
		return 0, err
	}
	if bundle.Len() <= c {
		return 0, nil
	}

	total := 0
	for _, g := range sortByGoodValue(bundle, goodValue, best)[c:] {
		total += goodValue(g)
	}

	return total, nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}

	return "s"
}

func goodNames(b types.Bundle) []string {
	sorted := b.Sorted()
	out := make([]string, len(sorted))
	for i, g := range sorted {
		out[i] = string(g)
	}

	return out
}
