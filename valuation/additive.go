package valuation

import (
	"fmt"

	"github.com/erelsgl/family-fair-allocation/types"
)

// Additive is a valuation where a bundle is worth the sum of its goods' weights.
type Additive struct {
	base
	weights map[types.Good]int
	desired types.Bundle
}

var _ DesiredGoodsValuation = (*Additive)(nil)

// NewAdditive creates an additive valuation from per-good weights.
//
// Goods absent from weights are worth 0. Negative weights are treated as 0 so
// that the valuation stays monotone.
//
// Parameters:
//   - weights: Good to weight
//   - opts: Optional configuration (WithCardinality)
//
// Returns:
//   - *Additive: The valuation
func NewAdditive(weights map[types.Good]int, opts ...Option) *Additive {
	a := &Additive{
		base:    newBase(opts),
		weights: make(map[types.Good]int, len(weights)),
		desired: types.NewBundle(),
	}

	for g, w := range weights {
		w = max(w, 0)
		a.weights[g] = w
		a.totalValue += w
		if w > 0 {
			a.desired.Add(g)
		}
	}

	return a
}

// Weight returns the weight of a single good.
func (a *Additive) Weight(g types.Good) int {
	return a.weights[g]
}

// DesiredGoods returns the goods with positive weight.
func (a *Additive) DesiredGoods() types.Bundle {
	return a.desired.Clone()
}

// Universe returns every good that has a weight, including zero weights.
func (a *Additive) Universe() types.Bundle {
	u := types.NewBundle()
	for g := range a.weights {
		u.Add(g)
	}

	return u
}

// Value returns the sum of the weights of the goods in bundle.
func (a *Additive) Value(bundle types.Bundle) (int, error) {
	total := 0
	for g := range bundle {
		total += a.weights[g]
	}

	return total, nil
}

// ValueExceptBestC drops the c heaviest goods. Equal weights drop in ascending good order.
func (a *Additive) ValueExceptBestC(bundle types.Bundle, c int) (int, error) {
	return exceptClosedForm(bundle, c, a.Weight, true)
}

// ValueExceptWorstC drops the c lightest goods. Equal weights drop in ascending good order.
func (a *Additive) ValueExceptWorstC(bundle types.Bundle, c int) (int, error) {
	return exceptClosedForm(bundle, c, a.Weight, false)
}

// MaximinShare enumerates the partitions of bundle into c parts.
func (a *Additive) MaximinShare(bundle types.Bundle, c int) (int, error) {
	return maximinSearch(a, bundle, c)
}

func (a *Additive) String() string {
	return fmt.Sprintf("%d agent%s with additive valuations. Desired goods: %v",
		a.cardinality, plural(a.cardinality), goodNames(a.desired))
}
