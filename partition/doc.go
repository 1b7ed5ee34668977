// Package partition enumerates set partitions, combinations and powersets of
// small ordered collections.
//
// All generators are lazy iter.Seq values: nothing is computed until the
// sequence is ranged over, every range starts a fresh enumeration, and the
// output order is fully determined by the input order.
//
// The number of set partitions of n items is the Bell number B(n), which grows
// faster than exponentially (B(10) = 115975). These generators are meant for
// goods universes of a dozen items or fewer.
//
// Example:
//
//	for p := range partition.Exactly([]string{"x", "y", "z"}, 2) {
//	    fmt.Println(p) // [[x] [y z]], [[x y] [z]], [[y] [x z]]
//	}
package partition
