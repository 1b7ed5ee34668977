package testing

import (
	"github.com/erelsgl/family-fair-allocation/fairness"
	"github.com/erelsgl/family-fair-allocation/family"
	"github.com/erelsgl/family-fair-allocation/types"
	"github.com/erelsgl/family-fair-allocation/valuation"
)

// Goods converts names to goods.
func Goods(names ...string) []types.Good {
	out := make([]types.Good, len(names))
	for i, n := range names {
		out[i] = types.Good(n)
	}

	return out
}

// Binary returns a binary valuation wanting the goods in desired (e.g. "wx")
// shared by cardinality identical agents. Each character is one good.
func Binary(desired string, cardinality int) *valuation.Binary {
	b := types.NewBundle()
	for _, r := range desired {
		b.Add(types.Good(string(r)))
	}

	return valuation.NewBinary(b, valuation.WithCardinality(cardinality))
}

// RWAVExample returns the two families of the basic RWAV example with the
// 1-of-best-2 criterion. RWAV gives {x,z} to the first and {w,y} to the second.
func RWAVExample() ([]family.Family, []types.Good) {
	c := fairness.OneOfBestC(2)
	f1 := family.New("Group 1", c, Binary("wx", 1), Binary("xy", 2), Binary("yz", 3), Binary("zw", 4))
	f2 := family.New("Group 2", c, Binary("wz", 2), Binary("zy", 3))

	return []family.Family{f1, f2}, Goods("w", "x", "y", "z")
}

// EnhancedRWAVExample returns two families of ten agents each in which six
// members of the first family want y. With threshold 0.6 Enhanced RWAV gives
// {y} to the first family and everything else to the second.
func EnhancedRWAVExample() ([]family.Family, []types.Good) {
	c := fairness.OneOfBestC(2)
	f1 := family.New("Group 1", c, Binary("wx", 1), Binary("xy", 3), Binary("yz", 3), Binary("wv", 3))
	f2 := family.New("Group 2", c, Binary("wx", 5), Binary("yz", 5))

	return []family.Family{f1, f2}, Goods("v", "w", "x", "y", "z")
}

// DemoGroups returns the two groups of the enhanced RWAV demo: a small group
// that all want v and a group of ten with one agent per pair of goods.
func DemoGroups() ([]family.Family, []types.Good) {
	c := fairness.OneOfBestC(2)
	f1 := family.New("Group 1", c, Binary("vw", 3), Binary("vx", 3), Binary("vy", 2), Binary("vz", 2))

	var members []valuation.Valuation
	for _, pair := range []string{"vw", "vx", "vy", "vz", "wx", "wy", "wz", "xy", "xz", "yz"} {
		members = append(members, Binary(pair, 1))
	}
	f2 := family.New("Group 2", c, members...)

	return []family.Family{f1, f2}, Goods("v", "w", "x", "y", "z")
}

// IdenticalPairs returns one family of two agents, wanting {w,x} and {y,z},
// to be passed twice to the two-thirds protocol.
func IdenticalPairs() (family.Family, []types.Good) {
	return family.New("Group", fairness.OneOfBestC(2), Binary("wx", 1), Binary("yz", 1)), Goods("w", "x", "y", "z")
}

// AdditiveGroups returns the three additive groups of the line demo, each
// with the PROP1 criterion for two families.
func AdditiveGroups() ([]family.Family, []types.Good) {
	c := fairness.ProportionalExceptC(2, 1)
	add := func(w map[types.Good]int, n int) valuation.Valuation {
		return valuation.NewAdditive(w, valuation.WithCardinality(n))
	}

	f1 := family.New("Group 1", c,
		add(map[types.Good]int{"u": 1, "v": 1, "w": 2, "x": 4, "y": 8, "z": 16}, 7),
		add(map[types.Good]int{"u": 16, "v": 16, "w": 8, "x": 4, "y": 2, "z": 1}, 2),
	)
	f2 := family.New("Group 2", c,
		add(map[types.Good]int{"u": 1, "v": 1, "w": 1, "x": 3, "y": 3, "z": 4}, 5),
		add(map[types.Good]int{"u": 4, "v": 4, "w": 3, "x": 1, "y": 3, "z": 1}, 1),
	)
	f3 := family.New("Group 3", c,
		add(map[types.Good]int{"u": 1, "v": 1, "w": 1, "x": 2, "y": 3, "z": 3}, 9),
		add(map[types.Good]int{"u": 3, "v": 3, "w": 3, "x": 2, "y": 1, "z": 1}, 3),
	)

	return []family.Family{f1, f2, f3}, Goods("u", "v", "w", "x", "y", "z")
}
