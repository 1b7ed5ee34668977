// Package hash fingerprints allocations with XXH3.
package hash

import (
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/erelsgl/family-fair-allocation/types"
)

const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"
)

// Fingerprint identifies an allocation: which family got which goods.
type Fingerprint uint64

// String renders the fingerprint as 16 hex digits.
func (f Fingerprint) String() string {
	return fmt.Sprintf("%016x", uint64(f))
}

// Allocation fingerprints bundles[i] as held by names[i].
//
// The result depends on the family order and on the content of each bundle,
// never on map iteration order. Equal allocations always share a fingerprint.
//
// Parameters:
//   - names: Family names, one per bundle
//   - bundles: The allocation
//   - seed: Seed for the hash function (0 for the unseeded XXH3)
//
// Returns:
//   - Fingerprint: 64-bit allocation hash
func Allocation(names []string, bundles []types.Bundle, seed uint64) Fingerprint {
	var sb strings.Builder
	for i, b := range bundles {
		if i < len(names) {
			sb.WriteString(names[i])
		}
		sb.WriteString(fieldSep)
		sb.WriteString(b.Key())
		sb.WriteString(recordSep)
	}

	return Fingerprint(hashString(sb.String(), seed))
}

func hashString(s string, seed uint64) uint64 {
	if seed != 0 {
		return xxh3.HashStringSeed(s, seed)
	}

	return xxh3.HashString(s)
}
