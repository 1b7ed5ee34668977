package types

import (
	"fmt"
	"slices"
	"strings"
)

// Good is an atomic, indivisible item to be allocated.
//
// Goods are identified by name. The natural ordering of goods is the string
// ordering of their names; every deterministic tie-break in the library uses it.
type Good string

// Bundle is a set of goods.
//
// Iteration order over a Bundle is unspecified. Use Sorted for the canonical
// ascending order whenever the result must be reproducible.
type Bundle map[Good]struct{}

// NewBundle creates a bundle holding the given goods. Duplicates are ignored.
//
// Parameters:
//   - goods: Goods to place in the bundle
//
// Returns:
//   - Bundle: A new bundle (never nil)
func NewBundle(goods ...Good) Bundle {
	b := make(Bundle, len(goods))
	for _, g := range goods {
		b[g] = struct{}{}
	}

	return b
}

// ParseBundle parses a comma-separated list of goods such as "x,y,z".
//
// Surrounding whitespace is trimmed and empty elements are skipped, so both
// "" and " , " parse to the empty bundle.
//
// Parameters:
//   - s: Comma-separated good names
//
// Returns:
//   - Bundle: The parsed bundle
func ParseBundle(s string) Bundle {
	b := NewBundle()
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		b[Good(part)] = struct{}{}
	}

	return b
}

// Add inserts g into the bundle.
func (b Bundle) Add(g Good) {
	b[g] = struct{}{}
}

// Remove deletes g from the bundle. Removing an absent good is a no-op.
func (b Bundle) Remove(g Good) {
	delete(b, g)
}

// Contains reports whether g is in the bundle.
func (b Bundle) Contains(g Good) bool {
	_, ok := b[g]
	return ok
}

// Len returns the number of goods in the bundle.
func (b Bundle) Len() int {
	return len(b)
}

// Clone returns an independent copy of the bundle.
func (b Bundle) Clone() Bundle {
	out := make(Bundle, len(b))
	for g := range b {
		out[g] = struct{}{}
	}

	return out
}

// Union returns a new bundle with the goods of both b and other.
func (b Bundle) Union(other Bundle) Bundle {
	out := b.Clone()
	for g := range other {
		out[g] = struct{}{}
	}

	return out
}

// Difference returns a new bundle with the goods of b that are not in other.
func (b Bundle) Difference(other Bundle) Bundle {
	out := make(Bundle, len(b))
	for g := range b {
		if !other.Contains(g) {
			out[g] = struct{}{}
		}
	}

	return out
}

// Intersect returns a new bundle with the goods present in both b and other.
func (b Bundle) Intersect(other Bundle) Bundle {
	small, large := b, other
	if len(small) > len(large) {
		small, large = large, small
	}

	out := make(Bundle, len(small))
	for g := range small {
		if large.Contains(g) {
			out[g] = struct{}{}
		}
	}

	return out
}

// Equal reports whether both bundles hold exactly the same goods.
func (b Bundle) Equal(other Bundle) bool {
	if len(b) != len(other) {
		return false
	}
	for g := range b {
		if !other.Contains(g) {
			return false
		}
	}

	return true
}

// Sorted returns the goods of the bundle in ascending order.
//
// Returns:
//   - []Good: Canonically ordered goods (empty, non-nil slice for an empty bundle)
func (b Bundle) Sorted() []Good {
	out := make([]Good, 0, len(b))
	for g := range b {
		out = append(out, g)
	}
	slices.Sort(out)

	return out
}

// Key returns the canonical string form of the bundle: the sorted goods joined by ",".
//
// Keys identify bundles only when no good name contains a comma; see
// ValidateGood. Bundles built with ParseBundle always satisfy this.
func (b Bundle) Key() string {
	sorted := b.Sorted()
	parts := make([]string, len(sorted))
	for i, g := range sorted {
		parts[i] = string(g)
	}

	return strings.Join(parts, ",")
}

// String renders the bundle as "{x,y,z}".
func (b Bundle) String() string {
	return "{" + b.Key() + "}"
}

// ValidateGood checks that g can be written in bundle syntax: non-empty, and
// without commas or surrounding whitespace, which ParseBundle would split or trim.
//
// Returns:
//   - error: ErrInvalidArgument for an unusable name
func ValidateGood(g Good) error {
	s := string(g)
	switch {
	case s == "":
		return fmt.Errorf("%w: empty good name", ErrInvalidArgument)
	case strings.Contains(s, ","):
		return fmt.Errorf("%w: good name %q contains a comma", ErrInvalidArgument, s)
	case strings.TrimSpace(s) != s:
		return fmt.Errorf("%w: good name %q has surrounding whitespace", ErrInvalidArgument, s)
	}

	return nil
}

// SortGoods returns a sorted, de-duplicated copy of goods.
func SortGoods(goods []Good) []Good {
	out := slices.Clone(goods)
	slices.Sort(out)

	return slices.Compact(out)
}
