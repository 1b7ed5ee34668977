package protocol

import (
	"fmt"
	"math"

	"github.com/erelsgl/family-fair-allocation/family"
	"github.com/erelsgl/family-fair-allocation/types"
)

// EnhancedRWAV gives a single good to a family when at least a threshold
// fraction of its members want it, and falls back to RWAV otherwise.
type EnhancedRWAV struct {
	cfg       config
	threshold float64
}

var _ Protocol = (*EnhancedRWAV)(nil)

// NewEnhancedRWAV creates a new Enhanced RWAV protocol for two families.
//
// Parameters:
//   - threshold: Fraction of a family's members in [0, 1]
//   - opts: Protocol options
//
// Returns:
//   - *EnhancedRWAV: Initialized protocol
func NewEnhancedRWAV(threshold float64, opts ...Option) *EnhancedRWAV {
	return &EnhancedRWAV{cfg: newConfig(NameEnhancedRWAV, opts), threshold: threshold}
}

// Name returns "enhanced-rwav".
func (p *EnhancedRWAV) Name() string {
	return NameEnhancedRWAV
}

// Threshold returns the configured threshold.
func (p *EnhancedRWAV) Threshold() float64 {
	return p.threshold
}

// Allocate runs Enhanced RWAV.
//
// Goods are examined in ascending order. The first good g wanted by at least
// threshold × members of a family goes to that family alone and every other
// good to the other family. When g qualifies for both families, the family in
// which the larger fraction wants g takes it, and the first family on an exact
// tie. Families without members never qualify, unlike the plain threshold
// test (0 >= threshold × 0) which would hand an empty family the first good;
// such a family takes part in the RWAV fallback instead. When no good qualifies the
// result is that of RWAV.
//
// Returns:
//   - []types.Bundle: One bundle per family
//   - error: types.ErrPreconditionViolation unless there are exactly 2 families,
//     types.ErrInvalidArgument for a threshold outside [0, 1]
func (p *EnhancedRWAV) Allocate(families []family.Family, goods []types.Good) ([]types.Bundle, error) {
	if err := requireTwoFamilies(NameEnhancedRWAV, families); err != nil {
		return nil, err
	}
	if math.IsNaN(p.threshold) || p.threshold < 0 || p.threshold > 1 {
		return nil, fmt.Errorf("%w: threshold must be in [0,1], got %g", types.ErrInvalidArgument, p.threshold)
	}

	sorted := types.SortGoods(goods)

	return p.cfg.measure(NameEnhancedRWAV, families, sorted, func() ([]types.Bundle, error) {
		bundles, err := p.singleGood(families, sorted)
		if err != nil || bundles != nil {
			return bundles, err
		}

		p.cfg.trace("No good passes the threshold %g; running RWAV", p.threshold)

		return p.cfg.takeTurns(NameEnhancedRWAV, families, sorted, len(families))
	})
}

// singleGood returns nil bundles when no good passes the threshold.
func (p *EnhancedRWAV) singleGood(families []family.Family, goods []types.Good) ([]types.Bundle, error) {
	sizes := [2]int{families[0].NumMembers(nil), families[1].NumMembers(nil)}

	for _, g := range goods {
		var wanting [2]int
		var passes [2]bool
		for i, f := range families {
			n, err := f.NumMembersWhoWant(g)
			if err != nil {
				return nil, err
			}
			wanting[i] = n
			// an empty family would pass trivially; it is left to RWAV
			passes[i] = sizes[i] > 0 && float64(n) >= p.threshold*float64(sizes[i])
		}

		winner := -1
		switch {
		case passes[0] && passes[1]:
			// compare wanting[0]/sizes[0] with wanting[1]/sizes[1]
			if wanting[1]*sizes[0] > wanting[0]*sizes[1] {
				winner = 1
			} else {
				winner = 0
			}
		case passes[0]:
			winner = 0
		case passes[1]:
			winner = 1
		}
		if winner < 0 {
			continue
		}

		loser := 1 - winner
		bundles := newBundles(2)
		bundles[winner].Add(g)
		for _, other := range goods {
			if other != g {
				bundles[loser].Add(other)
			}
		}

		p.cfg.trace("%d out of %d members in %s want %s, so %s gets %s and %s gets the rest",
			wanting[winner], sizes[winner], families[winner].Name, g, families[winner].Name, g, families[loser].Name)
		p.cfg.hooks.OnPick(1, families[winner].Name, g)
		p.cfg.metrics.RecordTurn(NameEnhancedRWAV, families[winner].Name)

		return bundles, nil
	}

	return nil, nil
}
