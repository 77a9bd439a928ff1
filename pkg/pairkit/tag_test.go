package pairkit_test

import (
	"math"
	"testing"

	"go.llib.dev/specialize/pkg/pairkit"
	"go.llib.dev/specialize/spechelper/testpair"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

type float64Pair struct{ one, two float64 }

func (p float64Pair) ValueOne() float64        { return p.one }
func (p float64Pair) ValueTwo() float64        { return p.two }
func (p float64Pair) ValueDifference() float64 { return p.one - p.two }

func TestKind(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("every tag names its own kind", func(t *testcase.T) {
		assert.Equal(t, pairkit.KindNoOptimization, pairkit.NoOptimization[int8, testpair.TwoValueHolder]{}.Kind())
		assert.Equal(t, pairkit.KindStoredDifference, pairkit.StoredDifference[int8, testpair.TwoValueAndDifferenceHolder]{}.Kind())
		assert.Equal(t, pairkit.KindManualOverride, pairkit.ManualOverride[int8, testpair.TwoValueHolder]{}.Kind())
	})

	s.Test("String", func(t *testcase.T) {
		assert.Equal(t, "NoOptimization", pairkit.KindNoOptimization.String())
		assert.Equal(t, "StoredDifference", pairkit.KindStoredDifference.String())
		assert.Equal(t, "ManualOverride", pairkit.KindManualOverride.String())
	})
}

func TestNoOptimization_FirstValueSmaller(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("a difference storing type may still use the generic strategy", func(t *testcase.T) {
		h := testpair.TwoValueAndDifferenceHolder{One: 3, Two: 7, Difference: 100}
		assert.True(t, pairkit.NoOptimization[int8, testpair.TwoValueAndDifferenceHolder]{}.FirstValueSmaller(h))
	})

	s.Test("float scalars", func(t *testcase.T) {
		tag := pairkit.NoOptimization[float64, float64Pair]{}
		assert.True(t, tag.FirstValueSmaller(float64Pair{one: -0.5, two: 0.25}))
		assert.False(t, tag.FirstValueSmaller(float64Pair{one: 0.25, two: 0.25}))
		assert.False(t, tag.FirstValueSmaller(float64Pair{one: 1.5, two: -1.5}))
	})
}

func TestStoredDifference_FirstValueSmaller(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("float scalars", func(t *testcase.T) {
		tag := pairkit.StoredDifference[float64, float64Pair]{}
		assert.True(t, tag.FirstValueSmaller(float64Pair{one: -0.5, two: 0.25}))
		assert.False(t, tag.FirstValueSmaller(float64Pair{one: 0.25, two: 0.25}))
	})

	s.Test("it agrees with the generic strategy while the difference invariant holds", func(t *testcase.T) {
		t.Random.Repeat(42, 128, func() {
			h := testpair.MakeTwoValueAndDifferenceHolder(t)
			assert.Equal(t,
				pairkit.NoOptimization[int8, testpair.TwoValueAndDifferenceHolder]{}.FirstValueSmaller(h),
				pairkit.StoredDifference[int8, testpair.TwoValueAndDifferenceHolder]{}.FirstValueSmaller(h))
		})
	})
}

func TestManualOverride_FirstValueSmaller(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the strategy itself always fails", func(t *testcase.T) {
		stubLogger(t)
		tag := pairkit.ManualOverride[int8, testpair.TwoValueHolder]{}
		assert.Panic(t, func() { tag.FirstValueSmaller(testpair.TwoValueHolder{One: 3, Two: 7}) })
		assert.Panic(t, func() { tag.FirstValueSmaller(testpair.TwoValueHolder{One: 7, Two: 3}) })
	})
}

func TestNumber_nan(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("NaN is never reported as the smaller value", func(t *testcase.T) {
		nan := math.NaN()
		generic := pairkit.NoOptimization[float64, float64Pair]{}
		assert.False(t, generic.FirstValueSmaller(float64Pair{one: nan, two: 1}))
		assert.False(t, generic.FirstValueSmaller(float64Pair{one: 1, two: nan}))
	})

	s.Test("a NaN difference is never negative", func(t *testcase.T) {
		stored := pairkit.StoredDifference[float64, float64Pair]{}
		assert.False(t, stored.FirstValueSmaller(float64Pair{one: math.NaN(), two: 1}))
	})
}
