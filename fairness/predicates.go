package fairness

import (
	"fmt"

	"github.com/erelsgl/family-fair-allocation/types"
	"github.com/erelsgl/family-fair-allocation/valuation"
)

// IsEF reports whether v values own at least as much as every bundle in all.
func IsEF(v valuation.Valuation, own types.Bundle, all []types.Bundle) (bool, error) {
	ownValue, err := v.Value(own)
	if err != nil {
		return false, err
	}

	for _, other := range all {
		otherValue, err := v.Value(other)
		if err != nil {
			return false, err
		}
		if ownValue < otherValue {
			return false, nil
		}
	}

	return true, nil
}

// IsEFc reports whether v values own at least as much as every other bundle
// once that bundle's best c goods are removed.
func IsEFc(v valuation.Valuation, own types.Bundle, all []types.Bundle, c int) (bool, error) {
	ownValue, err := v.Value(own)
	if err != nil {
		return false, err
	}

	for _, other := range all {
		otherValue, err := v.ValueExceptBestC(other, c)
		if err != nil {
			return false, err
		}
		if ownValue < otherValue {
			return false, nil
		}
	}

	return true, nil
}

// IsEF1 is IsEFc with c = 1.
func IsEF1(v valuation.Valuation, own types.Bundle, all []types.Bundle) (bool, error) {
	return IsEFc(v, own, all, 1)
}

// IsEFx reports whether v values own at least as much as every other bundle
// once that bundle's worst good is removed.
func IsEFx(v valuation.Valuation, own types.Bundle, all []types.Bundle) (bool, error) {
	ownValue, err := v.Value(own)
	if err != nil {
		return false, err
	}

	for _, other := range all {
		otherValue, err := v.ValueExceptWorstC(other, 1)
		if err != nil {
			return false, err
		}
		if ownValue < otherValue {
			return false, nil
		}
	}

	return true, nil
}

// IsPROP reports whether own is worth at least 1/n of v's total value.
func IsPROP(v valuation.Valuation, own types.Bundle, n int) (bool, error) {
	if n < 1 {
		return false, fmt.Errorf("%w: number of agents must be positive, got %d", types.ErrInvalidArgument, n)
	}

	ownValue, err := v.Value(own)
	if err != nil {
		return false, err
	}

	return ownValue*n >= v.TotalValue(), nil
}

// IsPROPc reports whether own is worth at least 1/n of v's desired goods
// without their best n-1 goods.
//
// Only valuations exposing desired goods are supported; others fail with
// types.ErrUnsupportedOperation.
func IsPROPc(v valuation.Valuation, own types.Bundle, n int) (bool, error) {
	if n < 1 {
		return false, fmt.Errorf("%w: number of agents must be positive, got %d", types.ErrInvalidArgument, n)
	}

	d, ok := v.(valuation.DesiredGoodsValuation)
	if !ok {
		return false, fmt.Errorf("%w: PROPc needs desired goods, %s has none", types.ErrUnsupportedOperation, v)
	}

	ownValue, err := v.Value(own)
	if err != nil {
		return false, err
	}
	rest, err := v.ValueExceptBestC(d.DesiredGoods(), n-1)
	if err != nil {
		return false, err
	}

	return ownValue*n >= rest, nil
}

// Is1OfCMMS reports whether own is worth at least approx times v's
// 1-out-of-c maximin share of its whole universe. Pass approx = 1 for exact MMS.
func Is1OfCMMS(v valuation.Valuation, own types.Bundle, c int, approx float64) (bool, error) {
	ownValue, err := v.Value(own)
	if err != nil {
		return false, err
	}
	mms, err := v.MaximinShare(v.Universe(), c)
	if err != nil {
		return false, err
	}

	return float64(ownValue) >= approx*float64(mms), nil
}
