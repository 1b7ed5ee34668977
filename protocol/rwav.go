package protocol

import (
	"fmt"
	"slices"
	"time"

	"github.com/erelsgl/family-fair-allocation/family"
	"github.com/erelsgl/family-fair-allocation/types"
)

// RWAV implements round-robin with weighted approval voting.
type RWAV struct {
	cfg config
}

var _ Protocol = (*RWAV)(nil)

// NewRWAV creates a new RWAV protocol.
//
// Families pick one good per turn in the given order until no goods remain.
// Each pick is decided by ChooseGood with k = number of families.
//
// Returns:
//   - *RWAV: Initialized protocol
//
// Example:
//
//	p := protocol.NewRWAV(protocol.WithLogger(logger))
//	bundles, err := p.Allocate(families, goods)
func NewRWAV(opts ...Option) *RWAV {
	return &RWAV{cfg: newConfig(NameRWAV, opts)}
}

// Name returns "rwav".
func (p *RWAV) Name() string {
	return NameRWAV
}

// Allocate runs RWAV.
//
// Returns:
//   - []types.Bundle: One bundle per family
//   - error: types.ErrInvalidArgument without families, types.ErrUnsupportedOperation
//     for members without desired goods
func (p *RWAV) Allocate(families []family.Family, goods []types.Good) ([]types.Bundle, error) {
	if len(families) == 0 {
		return nil, fmt.Errorf("%w: no families to allocate to", types.ErrInvalidArgument)
	}

	return p.cfg.measure(NameRWAV, families, goods, func() ([]types.Bundle, error) {
		return p.cfg.takeTurns(NameRWAV, families, types.SortGoods(goods), len(families))
	})
}

// takeTurns runs the round-robin vote over goods, listed in the order used for traces.
func (c *config) takeTurns(name string, families []family.Family, goods []types.Good, k int) ([]types.Bundle, error) {
	if err := requireDesiredGoods(families); err != nil {
		return nil, err
	}

	bundles := newBundles(len(families))
	remaining := types.NewBundle(goods...)
	line := slices.Clone(goods)

	for turn := 0; len(line) > 0; turn++ {
		idx := turn % len(families)
		f := families[idx]

		c.trace("Turn #%d: %s's turn to pick a good from %s:", turn+1, f.Name, goodList(line))
		g, err := chooseGood(c.engine, f, bundles[idx], remaining, k, c.hooks.OnTrace)
		if err != nil {
			return nil, err
		}
		c.trace("%s picks %s", f.Name, g)

		bundles[idx].Add(g)
		remaining.Remove(g)
		line = slices.DeleteFunc(line, func(x types.Good) bool { return x == g })

		c.hooks.OnPick(turn+1, f.Name, g)
		c.metrics.RecordTurn(name, f.Name)
		c.logger.Debug("family picks good", "turn", turn+1, "family", f.Name, "good", g)
	}

	return bundles, nil
}

// measure runs allocate and records its outcome.
func (c *config) measure(name string, families []family.Family, goods []types.Good, allocate func() ([]types.Bundle, error)) ([]types.Bundle, error) {
	start := time.Now()
	bundles, err := allocate()
	c.metrics.RecordAllocation(name, len(families), len(goods), time.Since(start).Seconds(), err == nil)
	if err != nil {
		c.logger.Error("allocation failed", "error", err)
		return nil, err
	}
	c.logger.Info("allocation complete", "families", len(families), "goods", len(goods))

	return bundles, nil
}
