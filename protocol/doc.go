// Package protocol provides the allocation protocols for families.
//
// A protocol divides a set of goods among families, returning one bundle per
// family. The package includes four protocols:
//
//   - RWAV: round-robin with weighted approval voting, for any number of families
//   - EnhancedRWAV: gives a single good to a family that overwhelmingly wants it, otherwise RWAV
//   - Line: the two-family turn protocol over goods ordered on a line
//   - TwoThirds: local search for two identical families
//
// # Protocol Selection Guide
//
// RWAV:
//   - Use for families of binary or additive agents
//   - Guarantees 1-of-best-c democratic fairness for the criterion's targets
//   - Exactly |goods| turns; each family picks in order
//
// EnhancedRWAV:
//   - Exactly two families
//   - A good wanted by at least threshold × members of one family decides the allocation in one step
//
// Line:
//   - Exactly two families
//   - Goods keep the order they were given in, which is the order used for traces
//
// TwoThirds:
//   - Exactly two families with identical members (not checked)
//   - Starts with everything in the second bundle and moves goods to the poorer side
//   - Bounded by an iteration factor times the number of agents
//
// Weighted votes come from the weight package. RWAV and Line need members
// that list their desired goods; monotone members fail with
// types.ErrUnsupportedOperation.
package protocol
