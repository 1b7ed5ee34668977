// Package weight computes the voting weights used by weighted approval voting.
//
// The balance B_k(r, s) of an agent with r remaining desired goods that still
// needs s more goods to reach its target is defined for k = 2 families by
//
//	B(r, s) = 1                                       if s <= 0
//	B(r, s) = 0                                       if s > r
//	B(r, s) = min((B(r-1, s) + B(r-1, s-1)) / 2, B(r-2, s-1))   otherwise
//
// and for k > 2 families only for s = 1, as 1 - 2^(-r/(k-1)). The voting weight
// is the marginal balance w(r, s) = B(r, s) - B(r-1, s).
//
// An Engine memoizes balances in a concurrent map and is safe for use by many
// goroutines. Default returns a process-wide engine.
package weight
