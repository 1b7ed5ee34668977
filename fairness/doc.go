// Package fairness tests allocations against family-level fairness notions and
// provides the criteria that turn an agent's total value into a target share.
//
// Predicates take a member's valuation, the bundle its family received and the
// bundles of all families:
//
//   - IsEF: no envy at all
//   - IsEFc / IsEF1: no envy once the best c (or 1) goods of the other bundle are removed
//   - IsEFx: no envy once the worst good of the other bundle is removed
//   - IsPROP / IsPROPc: at least a 1/n share of the total (or of the desired goods without the best n-1)
//   - Is1OfCMMS: at least the 1-out-of-c maximin share, optionally scaled
//
// Evaluate runs all predicates for every member of every family and returns a Report.
package fairness
