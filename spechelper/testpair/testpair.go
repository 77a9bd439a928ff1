// Package testpair holds two-value types that exercise every optimization tag of pairkit.
package testpair

import (
	"testing"

	"go.llib.dev/specialize/pkg/pairkit"
	"go.llib.dev/testcase"
)

// TwoValueHolder only has the basic capability.
type TwoValueHolder struct {
	One int8
	Two int8
}

func (h TwoValueHolder) ValueOne() int8 { return h.One }
func (h TwoValueHolder) ValueTwo() int8 { return h.Two }

func (TwoValueHolder) OptimizationDetails() pairkit.Strategy[TwoValueHolder] {
	return pairkit.NoOptimization[int8, TwoValueHolder]{}
}

func (h TwoValueHolder) FirstValueSmaller() bool { return pairkit.FirstValueSmaller(h) }

// TwoValueAndDifferenceHolder keeps the difference of its values next to them.
type TwoValueAndDifferenceHolder struct {
	One        int8
	Two        int8
	Difference int8
}

func (h TwoValueAndDifferenceHolder) ValueOne() int8        { return h.One }
func (h TwoValueAndDifferenceHolder) ValueTwo() int8        { return h.Two }
func (h TwoValueAndDifferenceHolder) ValueDifference() int8 { return h.Difference }

func (TwoValueAndDifferenceHolder) OptimizationDetails() pairkit.Strategy[TwoValueAndDifferenceHolder] {
	return pairkit.StoredDifference[int8, TwoValueAndDifferenceHolder]{}
}

func (h TwoValueAndDifferenceHolder) FirstValueSmaller() bool { return pairkit.FirstValueSmaller(h) }

// ValueAndOffsetHolder stores a base value and the offset of the second value from it.
// The sign of the offset alone answers FirstValueSmaller, so it overrides the operation
// without evaluating either value.
type ValueAndOffsetHolder struct {
	Base   int8
	Offset int8
}

func (h ValueAndOffsetHolder) ValueOne() int8 { return h.Base }
func (h ValueAndOffsetHolder) ValueTwo() int8 { return h.Base + h.Offset }

func (ValueAndOffsetHolder) OptimizationDetails() pairkit.Strategy[ValueAndOffsetHolder] {
	return pairkit.ManualOverride[int8, ValueAndOffsetHolder]{}
}

func (h ValueAndOffsetHolder) FirstValueSmaller() bool { return 0 < h.Offset }

// ForgetfulHolder is tagged ManualOverride but never overrides FirstValueSmaller.
type ForgetfulHolder struct {
	One int8
	Two int8
}

func (h ForgetfulHolder) ValueOne() int8 { return h.One }
func (h ForgetfulHolder) ValueTwo() int8 { return h.Two }

func (ForgetfulHolder) OptimizationDetails() pairkit.Strategy[ForgetfulHolder] {
	return pairkit.ManualOverride[int8, ForgetfulHolder]{}
}

func (h ForgetfulHolder) FirstValueSmaller() bool { return pairkit.FirstValueSmaller(h) }

// UnboundHolder declares no tag at all.
type UnboundHolder struct {
	One int8
	Two int8
}

func (h UnboundHolder) ValueOne() int8 { return h.One }
func (h UnboundHolder) ValueTwo() int8 { return h.Two }

func (UnboundHolder) OptimizationDetails() pairkit.Strategy[UnboundHolder] { return nil }

func (h UnboundHolder) FirstValueSmaller() bool { return pairkit.FirstValueSmaller(h) }

var (
	_ pairkit.Interface[int8] = TwoValueHolder{}
	_ pairkit.Interface[int8] = TwoValueAndDifferenceHolder{}
	_ pairkit.Interface[int8] = ValueAndOffsetHolder{}
	_ pairkit.Interface[int8] = ForgetfulHolder{}
	_ pairkit.Interface[int8] = UnboundHolder{}

	_ pairkit.StoresValueDifference[int8] = TwoValueAndDifferenceHolder{}
)

// RandomInt8 returns any int8, extremes included.
func RandomInt8(tb testing.TB) int8 {
	t := testcase.ToT(&tb)
	return int8(t.Random.IntBetween(-128, 127))
}

func MakeTwoValueHolder(tb testing.TB) TwoValueHolder {
	return TwoValueHolder{One: RandomInt8(tb), Two: RandomInt8(tb)}
}

// MakeTwoValueAndDifferenceHolder makes a holder whose difference fits into an int8.
func MakeTwoValueAndDifferenceHolder(tb testing.TB) TwoValueAndDifferenceHolder {
	one, two := makeNarrowPair(tb)
	return TwoValueAndDifferenceHolder{One: one, Two: two, Difference: one - two}
}

// MakeValueAndOffsetHolder makes a holder whose Base+Offset does not overflow.
func MakeValueAndOffsetHolder(tb testing.TB) ValueAndOffsetHolder {
	one, two := makeNarrowPair(tb)
	return ValueAndOffsetHolder{Base: one, Offset: two - one}
}

// makeNarrowPair keeps both values in [-64, 63], so their difference never overflows an int8.
func makeNarrowPair(tb testing.TB) (int8, int8) {
	t := testcase.ToT(&tb)
	return int8(t.Random.IntBetween(-64, 63)), int8(t.Random.IntBetween(-64, 63))
}
