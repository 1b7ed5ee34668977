package famalloc

import (
	"github.com/erelsgl/family-fair-allocation/family"
	"github.com/erelsgl/family-fair-allocation/fairness"
	"github.com/erelsgl/family-fair-allocation/protocol"
	"github.com/erelsgl/family-fair-allocation/types"
	"github.com/erelsgl/family-fair-allocation/valuation"
)

// Re-export types from the subpackages.
//
// This file provides a stable public API for the library's core types using
// type aliases, so that callers can write famalloc.Bundle or famalloc.Family
// while the subpackages depend only on types and never on the root package.
type (
	Good      = types.Good
	Bundle    = types.Bundle
	Family    = family.Family
	Valuation = valuation.Valuation
	Report    = fairness.Report
)

// Re-export interfaces for convenience.
type (
	Protocol          = protocol.Protocol
	FairnessCriterion = types.FairnessCriterion
	MetricsCollector  = types.MetricsCollector
	Logger            = types.Logger
	Hooks             = types.Hooks
)

// NewBundle creates a bundle holding the given goods.
func NewBundle(goods ...Good) Bundle {
	return types.NewBundle(goods...)
}
