// Package scenario loads declarative allocation problems.
//
// A scenario lists goods, a fairness criterion and families of binary,
// additive or monotone members. Scenarios are written in YAML or TOML:
//
//	name: Enhanced RWAV demo
//	goods: [v, w, x, y, z]
//	criterion: {name: one-of-best-c, c: 2}
//	protocol: enhanced-rwav
//	threshold: 0.6
//	families:
//	  - name: Group 1
//	    members:
//	      - {wants: [v, w], cardinality: 3}
//	      - {wants: [v, x], cardinality: 3}
//
// Sources supply scenarios: File reads a file on every call and Static holds
// one in memory.
package scenario
