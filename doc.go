// Package famalloc provides fair allocation of indivisible goods among families.
//
// A family is a group of agents who receive one shared bundle but value it
// individually. The library decides who gets which goods so that each member
// of each family reaches a fairness target such as "1-of-best-2" or
// "proportional except 1", even though members of the same family may
// disagree about what is worth having.
//
// # Quick Start
//
// Basic usage with default settings (round-robin with approval voting):
//
//	import (
//	    famalloc "github.com/erelsgl/family-fair-allocation"
//	    "github.com/erelsgl/family-fair-allocation/fairness"
//	    "github.com/erelsgl/family-fair-allocation/valuation"
//	)
//
//	crit := fairness.OneOfBestC(2)
//	group1 := famalloc.NewFamily("Group 1", crit,
//	    valuation.NewBinary(famalloc.NewBundle("w", "x")),
//	    valuation.NewBinary(famalloc.NewBundle("x", "y"), valuation.WithCardinality(2)),
//	)
//	group2 := famalloc.NewFamily("Group 2", crit,
//	    valuation.NewBinary(famalloc.NewBundle("w", "z"), valuation.WithCardinality(2)),
//	)
//
//	alloc, err := famalloc.New(famalloc.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := alloc.Allocate([]famalloc.Family{group1, group2}, []famalloc.Good{"w", "x", "y", "z"})
//
// # Packages
//
//   - valuation: monotone, additive and binary valuations
//   - partition: lazy enumeration of set partitions, used for maximin shares
//   - fairness: EF/EF1/EFx/PROP/PROPc/MMS predicates, criteria and reports
//   - weight: the voting-weight recurrence behind the RWAV protocols
//   - protocol: RWAV, enhanced RWAV, line and two-thirds protocols
//   - scenario: declarative YAML/TOML allocation problems
//
// # Configuration
//
// Config selects the protocol and the ambient stack (logging, metrics). It can
// be loaded from YAML or TOML with LoadConfig, and any field may be overridden
// from the environment with the FAMALLOC_ prefix:
//
//	FAMALLOC_PROTOCOL=enhanced-rwav FAMALLOC_THRESHOLD=0.6 famalloc run scenario.yaml
//
// See the examples/ directory and cmd/famalloc for complete programs.
package famalloc
