package types

// FairnessCriterion translates an agent's total value into the value the agent
// is owed (its target).
//
// Criteria are pure functions of the total value; they hold no state and may be
// shared between families and goroutines.
type FairnessCriterion interface {
	// Name returns a short human-readable identifier such as "1-of-best-2".
	Name() string

	// TargetValue returns the value an agent with the given total value is owed.
	TargetValue(totalValue int) int
}
