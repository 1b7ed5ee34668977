package famalloc

import "github.com/erelsgl/family-fair-allocation/types"

// Sentinel errors re-exported from the types package.
var (
	// ErrUndefinedValuation is returned when a monotone valuation is queried
	// on a bundle missing from its table.
	ErrUndefinedValuation = types.ErrUndefinedValuation

	// ErrUnsupportedOperation is returned when an operation is not defined for
	// the given valuation or family count.
	ErrUnsupportedOperation = types.ErrUnsupportedOperation

	// ErrPreconditionViolation is returned when a protocol's structural
	// precondition does not hold.
	ErrPreconditionViolation = types.ErrPreconditionViolation

	// ErrInvalidArgument is returned for out-of-range numeric arguments.
	ErrInvalidArgument = types.ErrInvalidArgument

	// ErrUnknownProtocol is returned when a protocol name cannot be resolved.
	ErrUnknownProtocol = types.ErrUnknownProtocol

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrUnknownCriterion is returned when a fairness criterion name cannot be resolved.
	ErrUnknownCriterion = types.ErrUnknownCriterion

	// ErrInvalidScenario is returned when a scenario cannot be built.
	ErrInvalidScenario = types.ErrInvalidScenario
)
