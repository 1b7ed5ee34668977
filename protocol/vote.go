package protocol

import (
	"fmt"
	"strings"

	"github.com/erelsgl/family-fair-allocation/family"
	"github.com/erelsgl/family-fair-allocation/types"
	"github.com/erelsgl/family-fair-allocation/valuation"
	"github.com/erelsgl/family-fair-allocation/weight"
)

// MemberWeight returns the voting weight of one agent of member.
//
// With r = value of remaining and s = target - value of owned, the weight is
// w_k(r, s) from e.
//
// Parameters:
//   - e: Voting-weight engine
//   - member: The member's valuation
//   - target: The member's target value
//   - owned: Goods its family already holds
//   - remaining: Goods still to be allocated
//   - k: Number of families
//
// Returns:
//   - float64: Weight of a single agent (not multiplied by cardinality)
//   - error: Valuation or weight errors
//
// Example:
//
//	// an agent wanting {w,x} with target 1, nothing owned, {x,y,z} left: 0.5
//	w, err := protocol.MemberWeight(weight.Default(), alice, 1, types.NewBundle(), remaining, 2)
func MemberWeight(e *weight.Engine, member valuation.Valuation, target int, owned, remaining types.Bundle, k int) (float64, error) {
	r, err := member.Value(remaining)
	if err != nil {
		return 0, err
	}
	have, err := member.Value(owned)
	if err != nil {
		return 0, err
	}

	return e.Weight(r, target-have, k)
}

// ChooseGood returns the good family f picks from remaining by weighted
// approval voting.
//
// Each member adds its weight times its cardinality to every good it desires;
// the remaining good with the highest total wins and ties go to the smallest good.
//
// Parameters:
//   - e: Voting-weight engine
//   - f: The family whose turn it is
//   - owned: Goods f already holds
//   - remaining: Goods still to be allocated (must not be empty)
//   - k: Number of families
//
// Returns:
//   - types.Good: The chosen good
//   - error: types.ErrUnsupportedOperation for members without desired goods,
//     types.ErrInvalidArgument when remaining is empty
func ChooseGood(e *weight.Engine, f family.Family, owned, remaining types.Bundle, k int) (types.Good, error) {
	return chooseGood(e, f, owned, remaining, k, nil)
}

func chooseGood(e *weight.Engine, f family.Family, owned, remaining types.Bundle, k int, trace func(string)) (types.Good, error) {
	if remaining.Len() == 0 {
		return "", fmt.Errorf("%w: no goods left to choose from", types.ErrInvalidArgument)
	}
	if trace == nil {
		trace = func(string) {}
	}

	votes := make(map[types.Good]float64)
	trace("Member weights:")
	trace(fmt.Sprintf("%-12s%-12s%-9s", "", "Desired set", "weight"))
	for _, m := range f.Members {
		d, ok := m.(valuation.DesiredGoodsValuation)
		if !ok {
			return "", fmt.Errorf("%w: weighted voting needs desired goods, %s has none", types.ErrUnsupportedOperation, m)
		}

		w, err := MemberWeight(e, m, f.Target(m), owned, remaining, k)
		if err != nil {
			return "", fmt.Errorf("%s: %w", f.Name, err)
		}
		desired := d.DesiredGoods()
		for g := range desired {
			votes[g] += w * float64(m.Cardinality())
		}
		trace(fmt.Sprintf("%-12s%-12s%-9g", agents(m.Cardinality()), desired.Key(), w))
	}

	trace("Remaining good weights:")
	var best types.Good
	bestVotes := -1.0
	for _, g := range remaining.Sorted() {
		trace(fmt.Sprintf("%-6s%-9g", g, votes[g]))
		if votes[g] > bestVotes {
			best, bestVotes = g, votes[g]
		}
	}

	return best, nil
}

// requireDesiredGoods fails on the first member that cannot vote.
func requireDesiredGoods(families []family.Family) error {
	for _, f := range families {
		for _, m := range f.Members {
			if _, ok := m.(valuation.DesiredGoodsValuation); !ok {
				return fmt.Errorf("%w: %s: weighted voting needs desired goods, %s has none",
					types.ErrUnsupportedOperation, f.Name, m)
			}
		}
	}

	return nil
}

func agents(n int) string {
	if n == 1 {
		return "1 member"
	}

	return fmt.Sprintf("%d members", n)
}

func goodList(goods []types.Good) string {
	parts := make([]string, len(goods))
	for i, g := range goods {
		parts[i] = string(g)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
