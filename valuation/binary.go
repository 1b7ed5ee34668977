package valuation

import (
	"fmt"

	"github.com/erelsgl/family-fair-allocation/types"
)

// Binary is a valuation where each desired good is worth 1 and every other good 0.
type Binary struct {
	base
	desired types.Bundle
}

var _ DesiredGoodsValuation = (*Binary)(nil)

// NewBinary creates a binary valuation that wants the given goods.
//
// Example:
//
//	a := valuation.NewBinary(types.NewBundle("x", "y", "z"), valuation.WithCardinality(2))
//	fmt.Println(a) // 2 agents who want [x y z]
func NewBinary(desired types.Bundle, opts ...Option) *Binary {
	b := &Binary{
		base:    newBase(opts),
		desired: desired.Clone(),
	}
	b.totalValue = b.desired.Len()

	return b
}

// DesiredGoods returns the goods this valuation wants.
func (b *Binary) DesiredGoods() types.Bundle {
	return b.desired.Clone()
}

// Universe returns the desired goods; other goods never change a value.
func (b *Binary) Universe() types.Bundle {
	return b.desired.Clone()
}

// Value counts the desired goods in bundle.
func (b *Binary) Value(bundle types.Bundle) (int, error) {
	return b.count(bundle), nil
}

func (b *Binary) count(bundle types.Bundle) int {
	n := 0
	for g := range bundle {
		if b.desired.Contains(g) {
			n++
		}
	}

	return n
}

func (b *Binary) goodValue(g types.Good) int {
	if b.desired.Contains(g) {
		return 1
	}

	return 0
}

// ValueExceptBestC drops c goods, desired ones first.
func (b *Binary) ValueExceptBestC(bundle types.Bundle, c int) (int, error) {
	return exceptClosedForm(bundle, c, b.goodValue, true)
}

// ValueExceptWorstC drops c goods, undesired ones first.
func (b *Binary) ValueExceptWorstC(bundle types.Bundle, c int) (int, error) {
	return exceptClosedForm(bundle, c, b.goodValue, false)
}

// MaximinShare is floor(value(bundle) / c): desired goods can always be dealt
// out evenly, and undesired goods add nothing.
func (b *Binary) MaximinShare(bundle types.Bundle, c int) (int, error) {
	if c < 1 {
		return 0, fmt.Errorf("%w: maximin share needs c >= 1, got %d", types.ErrInvalidArgument, c)
	}

	return b.count(bundle) / c, nil
}

func (b *Binary) String() string {
	return fmt.Sprintf("%d agent%s who want %v", b.cardinality, plural(b.cardinality), goodNames(b.desired))
}
