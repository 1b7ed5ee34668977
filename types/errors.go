package types

import "errors"

// Sentinel errors for the allocation library.
//
// All of these describe deterministic conditions: calling again with the same
// inputs fails the same way, so callers should propagate rather than retry.
// Components wrap them with context using fmt.Errorf("%s: %w", msg, err) and
// callers test them with errors.Is.

// Valuation errors.
var (
	// ErrUndefinedValuation is returned when a monotone valuation is queried
	// on a bundle that is absent from its table.
	ErrUndefinedValuation = errors.New("valuation undefined for bundle")

	// ErrUnsupportedOperation is returned when an operation is not defined for
	// the given inputs, e.g. PROPc on a valuation without desired goods, or a
	// voting weight for more than two families with a shortfall above one.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// Protocol errors.
var (
	// ErrPreconditionViolation is returned when a protocol's structural
	// precondition does not hold, e.g. a two-family protocol given three families.
	ErrPreconditionViolation = errors.New("protocol precondition violated")

	// ErrInvalidArgument is returned for out-of-range numeric arguments such as
	// a threshold outside [0,1] or a non-positive part count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownProtocol is returned when a protocol name cannot be resolved.
	ErrUnknownProtocol = errors.New("unknown protocol")
)

// Configuration errors.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownCriterion is returned when a fairness criterion name cannot be resolved.
	ErrUnknownCriterion = errors.New("unknown fairness criterion")

	// ErrInvalidScenario is returned when a scenario file cannot be turned
	// into families and goods.
	ErrInvalidScenario = errors.New("invalid scenario")
)
