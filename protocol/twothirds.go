package protocol

import (
	"github.com/erelsgl/family-fair-allocation/family"
	"github.com/erelsgl/family-fair-allocation/types"
)

// TwoThirds implements the local-search protocol for two identical families.
//
// Starting with every good in the second bundle, it repeatedly moves a good to
// the other family when more members there want it and hold nothing than
// members on the current side want it and hold exactly one desired good.
type TwoThirds struct {
	cfg config
}

var _ Protocol = (*TwoThirds)(nil)

// NewTwoThirds creates a new two-thirds protocol.
//
// The run stops after an iteration without moves, or after
// WithIterationFactor × (number of agents in both families) iterations.
func NewTwoThirds(opts ...Option) *TwoThirds {
	return &TwoThirds{cfg: newConfig(NameTwoThirds, opts)}
}

// Name returns "two-thirds".
func (p *TwoThirds) Name() string {
	return NameTwoThirds
}

// Allocate runs the two-thirds protocol.
//
// The families are assumed to have identical members; this is not checked.
//
// Returns:
//   - []types.Bundle: One bundle per family
//   - error: types.ErrPreconditionViolation unless there are exactly 2 families
func (p *TwoThirds) Allocate(families []family.Family, goods []types.Good) ([]types.Bundle, error) {
	if err := requireTwoFamilies(NameTwoThirds, families); err != nil {
		return nil, err
	}

	sorted := types.SortGoods(goods)

	return p.cfg.measure(NameTwoThirds, families, sorted, func() ([]types.Bundle, error) {
		return p.search(families, sorted)
	})
}

func (p *TwoThirds) search(families []family.Family, goods []types.Good) ([]types.Bundle, error) {
	bundles := []types.Bundle{types.NewBundle(), types.NewBundle(goods...)}
	limit := p.cfg.iterationFactor * (families[0].NumMembers(nil) + families[1].NumMembers(nil))

	iterations, converged := 0, false
	for iterations < limit {
		iterations++
		p.cfg.trace("Currently, %s holds %s and %s holds %s",
			families[0].Name, bundles[0], families[1].Name, bundles[1])

		changed := false
		for from := range 2 {
			to := 1 - from
			for _, g := range bundles[from].Sorted() {
				helped, err := countMembers(families[to], g, bundles[to], 0)
				if err != nil {
					return nil, err
				}
				harmed, err := countMembers(families[from], g, bundles[from], 1)
				if err != nil {
					return nil, err
				}
				if helped <= harmed {
					continue
				}

				p.cfg.trace("Moving %s from %s to %s, harming %d members and helping %d",
					g, families[from].Name, families[to].Name, harmed, helped)
				bundles[from].Remove(g)
				bundles[to].Add(g)
				changed = true
			}
		}

		if !changed {
			converged = true
			break
		}
	}

	p.cfg.metrics.RecordEquilibriumIterations(NameTwoThirds, iterations, converged)
	if !converged {
		p.cfg.logger.Warn("no equilibrium within iteration bound", "iterations", iterations)
	}

	return bundles, nil
}

// countMembers counts the agents of f that want g and value bundle at exactly have.
func countMembers(f family.Family, g types.Good, bundle types.Bundle, have int) (int, error) {
	n := 0
	for _, m := range f.Members {
		wants, err := family.Wants(m, g)
		if err != nil {
			return 0, err
		}
		if !wants {
			continue
		}
		v, err := m.Value(bundle)
		if err != nil {
			return 0, err
		}
		if v == have {
			n += m.Cardinality()
		}
	}

	return n, nil
}
