package protocol

import (
	"fmt"
	"strings"

	"github.com/erelsgl/family-fair-allocation/family"
	"github.com/erelsgl/family-fair-allocation/types"
)

// Protocol names accepted by ByName.
const (
	NameRWAV         = "rwav"
	NameEnhancedRWAV = "enhanced-rwav"
	NameLine         = "line"
	NameTwoThirds    = "two-thirds"
)

// Protocol divides goods among families.
//
// Implementations are deterministic: the same families and goods always yield
// the same bundles, whatever the order of goods in the input.
type Protocol interface {
	// Name returns the protocol's configuration name.
	Name() string

	// Allocate divides goods among families.
	//
	// Parameters:
	//   - families: Families in turn order
	//   - goods: Goods to allocate (duplicates are ignored)
	//
	// Returns:
	//   - []types.Bundle: One bundle per family, pairwise disjoint, covering goods
	//   - error: Allocation error (e.g., types.ErrPreconditionViolation)
	Allocate(families []family.Family, goods []types.Good) ([]types.Bundle, error)
}

// Names returns every protocol name ByName accepts.
func Names() []string {
	return []string{NameRWAV, NameEnhancedRWAV, NameLine, NameTwoThirds}
}

// ByName builds a protocol from its configuration name.
//
// Parameters:
//   - name: One of Names() (case-insensitive)
//   - threshold: Enhanced RWAV threshold, ignored by the other protocols
//   - opts: Options passed to the protocol
//
// Returns:
//   - Protocol: The protocol
//   - error: types.ErrUnknownProtocol for unknown names
func ByName(name string, threshold float64, opts ...Option) (Protocol, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameRWAV:
		return NewRWAV(opts...), nil
	case NameEnhancedRWAV:
		return NewEnhancedRWAV(threshold, opts...), nil
	case NameLine:
		return NewLine(opts...), nil
	case NameTwoThirds:
		return NewTwoThirds(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q (known: %s)", types.ErrUnknownProtocol, name, strings.Join(Names(), ", "))
	}
}

func requireTwoFamilies(name string, families []family.Family) error {
	if len(families) != 2 {
		return fmt.Errorf("%w: %s needs exactly 2 families, got %d", types.ErrPreconditionViolation, name, len(families))
	}

	return nil
}

func newBundles(n int) []types.Bundle {
	bundles := make([]types.Bundle, n)
	for i := range bundles {
		bundles[i] = types.NewBundle()
	}

	return bundles
}

// lineOrder de-duplicates goods keeping their first occurrence.
func lineOrder(goods []types.Good) []types.Good {
	seen := make(map[types.Good]struct{}, len(goods))
	out := make([]types.Good, 0, len(goods))
	for _, g := range goods {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}

	return out
}
