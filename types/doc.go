// Package types provides the shared vocabulary of the allocation library.
//
// The types here are used by every other package. Keeping them in a leaf
// package avoids import cycles between the root famalloc package and the
// packages that implement valuations, fairness checks and protocols.
//
// Key types:
//   - Good, Bundle: the items being divided and sets of them
//   - FairnessCriterion: maps an agent's total value to the share it is owed
//   - Hooks: optional observer callbacks fired by protocols
//   - Logger: structured logging interface
//   - MetricsCollector: metrics recording interface
package types
