package partition

import (
	"iter"
	"slices"
)

// All generates every set partition of items.
//
// A partition of {first} ∪ rest is produced from each partition of rest by
// either inserting first into one of its existing parts or adding {first} as a
// new part. The empty collection has exactly one partition, with no parts.
//
// Parameters:
//   - items: Ordered collection to partition (not modified)
//
// Returns:
//   - iter.Seq[[][]T]: Partitions; each yielded value is freshly allocated
func All[T any](items []T) iter.Seq[[][]T] {
	return AtMost(items, len(items))
}

// AtMost generates the set partitions of items with at most c parts.
//
// Branches that would create more than c parts are pruned during generation,
// not filtered afterwards. For c < 0 nothing is generated.
func AtMost[T any](items []T, c int) iter.Seq[[][]T] {
	return func(yield func([][]T) bool) {
		if c < 0 {
			return
		}
		generate(items, c, func(p [][]T) bool {
			return yield(clonePartition(p))
		})
	}
}

// Exactly generates the set partitions of items with exactly c parts.
func Exactly[T any](items []T, c int) iter.Seq[[][]T] {
	return func(yield func([][]T) bool) {
		for p := range AtMost(items, c) {
			if len(p) != c {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// generate walks the partitions of items with at most limit parts and reports
// whether the walk should continue.
func generate[T any](items []T, limit int, yield func([][]T) bool) bool {
	if len(items) == 0 {
		return yield([][]T{})
	}

	first := items[0]

	return generate(items[1:], limit, func(smaller [][]T) bool {
		// insert first into each existing part
		for n, part := range smaller {
			next := make([][]T, len(smaller))
			copy(next, smaller)
			next[n] = append([]T{first}, part...)
			if !yield(next) {
				return false
			}
		}

		// first in a part of its own
		if len(smaller) < limit {
			next := make([][]T, 0, len(smaller)+1)
			next = append(next, []T{first})
			next = append(next, smaller...)

			return yield(next)
		}

		return true
	})
}

func clonePartition[T any](p [][]T) [][]T {
	out := make([][]T, len(p))
	for i, part := range p {
		out[i] = slices.Clone(part)
	}

	return out
}

// Combinations generates the k-element subsets of items in lexicographic
// index order, matching the order of items.
//
// For k = 0 a single empty subset is generated; for k < 0 or k > len(items)
// nothing is generated.
func Combinations[T any](items []T, k int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := len(items)
		if k < 0 || k > n {
			return
		}

		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}

		for {
			combo := make([]T, k)
			for i, j := range idx {
				combo[i] = items[j]
			}
			if !yield(combo) {
				return
			}

			// advance the rightmost index that still has room
			i := k - 1
			for i >= 0 && idx[i] == i+n-k {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// Powerset generates every subset of items, by increasing size and then in
// combination order.
func Powerset[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for r := 0; r <= len(items); r++ {
			for combo := range Combinations(items, r) {
				if !yield(combo) {
					return
				}
			}
		}
	}
}
