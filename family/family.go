// Package family groups agents that receive a single shared bundle.
//
// A Family is an ordered list of members (valuations), a display name and the
// fairness criterion that fixes what each member is owed. Families are
// immutable once built and may be shared between protocol runs.
package family

import (
	"fmt"
	"strings"

	"github.com/erelsgl/family-fair-allocation/types"
	"github.com/erelsgl/family-fair-allocation/valuation"
)

const defaultName = "Anonymous Family"

// Family is a group of agents acting through one collective vote.
type Family struct {
	// Name is the display name used in traces and descriptions.
	Name string

	// Members are the family's valuations. Each may represent several
	// identical agents (see valuation.Valuation.Cardinality).
	Members []valuation.Valuation

	// Criterion maps a member's total value to its target value.
	Criterion types.FairnessCriterion
}

// New creates a family. An empty name is replaced by "Anonymous Family".
//
// Parameters:
//   - name: Display name
//   - criterion: Fairness criterion applied to every member
//   - members: Member valuations in voting order
//
// Returns:
//   - Family: The family
//
// Example:
//
//	fam := family.New("Group 1", fairness.OneOfBestC(2),
//	    valuation.NewBinary(types.NewBundle("w", "x")),
//	    valuation.NewBinary(types.NewBundle("y", "z"), valuation.WithCardinality(3)),
//	)
func New(name string, criterion types.FairnessCriterion, members ...valuation.Valuation) Family {
	if name == "" {
		name = defaultName
	}

	return Family{Name: name, Members: members, Criterion: criterion}
}

// NumMembers counts the agents whose valuation satisfies pred, weighting each
// member by its cardinality. A nil pred counts every agent.
func (f Family) NumMembers(pred func(valuation.Valuation) bool) int {
	n := 0
	for _, m := range f.Members {
		if pred == nil || pred(m) {
			n += m.Cardinality()
		}
	}

	return n
}

// NumMembersWhoWant counts the agents that value g positively.
func (f Family) NumMembersWhoWant(g types.Good) (int, error) {
	n := 0
	for _, m := range f.Members {
		ok, err := Wants(m, g)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", f.Name, err)
		}
		if ok {
			n += m.Cardinality()
		}
	}

	return n, nil
}

// Target returns the value member is owed under the family's criterion.
// Without a criterion every target is 0.
func (f Family) Target(member valuation.Valuation) int {
	if f.Criterion == nil {
		return 0
	}

	return f.Criterion.TargetValue(member.TotalValue())
}

// Targets returns the target of every member, in member order.
func (f Family) Targets() []int {
	out := make([]int, len(f.Members))
	for i, m := range f.Members {
		out[i] = f.Target(m)
	}

	return out
}

// AllocationDescription renders bundle together with how many members reach
// their target with it, e.g. "{x,z}: 7 out of 10 members satisfied".
func (f Family) AllocationDescription(bundle types.Bundle) string {
	satisfied := f.NumMembers(func(m valuation.Valuation) bool {
		v, err := m.Value(bundle)
		return err == nil && v >= f.Target(m)
	})

	return fmt.Sprintf("%s: %d out of %d members satisfied", bundle, satisfied, f.NumMembers(nil))
}

func (f Family) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s with %d members", f.Name, f.NumMembers(nil))
	if f.Criterion != nil {
		fmt.Fprintf(&sb, " (%s)", f.Criterion.Name())
	}
	sb.WriteString(":")
	for _, m := range f.Members {
		fmt.Fprintf(&sb, "\n * %s", m)
	}

	return sb.String()
}

// Wants reports whether m values the single good g positively.
//
// Valuations that list their desired goods are answered from that list; others
// are asked for the value of {g}, which fails for monotone tables without it.
func Wants(m valuation.Valuation, g types.Good) (bool, error) {
	if d, ok := m.(valuation.DesiredGoodsValuation); ok {
		return d.DesiredGoods().Contains(g), nil
	}

	v, err := m.Value(types.NewBundle(g))
	if err != nil {
		return false, err
	}

	return v > 0, nil
}
