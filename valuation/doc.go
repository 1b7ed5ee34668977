// Package valuation models how agents value bundles of goods.
//
// Three variants implement the closed Valuation interface:
//
//   - Monotone: an explicit table from bundles to values
//   - Additive: a weight per good; a bundle is worth the sum of its weights
//   - Binary: a set of desired goods; a bundle is worth how many of them it holds
//
// Every valuation is non-decreasing in the bundle (adding goods never lowers
// the value) and values the empty bundle at 0. A single valuation may stand for
// several identical agents; Cardinality reports how many.
//
// Besides plain values, each variant answers the derived queries used by the
// fairness predicates: the value of a bundle without its best or worst c goods,
// and the 1-out-of-c maximin share. Monotone answers them by exhaustive search;
// Additive and Binary use closed forms.
package valuation
