// Package pairkitcontract holds the contracts a pairkit.Interface implementation is expected to pass.
package pairkitcontract

import (
	"fmt"
	"testing"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/specialize/pkg/pairkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// Interface checks that FirstValueSmaller agrees with comparing ValueOne and ValueTwo,
// whichever strategy or override the subject uses.
func Interface[N pairkit.Number, T pairkit.Interface[N]](mk func(tb testing.TB) T) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) T {
		return mk(t)
	})

	s.Test("FirstValueSmaller reports whether the first value is strictly less than the second", func(t *testcase.T) {
		t.Random.Repeat(3, 7, func() {
			v := mk(t)
			one, two := v.ValueOne(), v.ValueTwo()
			t.OnFail(func() {
				t.Log("value one:", one)
				t.Log("value two:", two)
			})
			assert.Equal(t, one < two, v.FirstValueSmaller())
		})
	})

	s.Test("the answer is the same on every call", func(t *testcase.T) {
		v := subject.Get(t)
		exp := v.FirstValueSmaller()
		t.Random.Repeat(3, 7, func() {
			assert.Equal(t, exp, v.FirstValueSmaller())
		})
	})

	return s.AsSuite(fmt.Sprintf("pairkit.Interface[%s]", reflectkit.TypeOf[T]().String()))
}

// StoresValueDifference checks the invariant pairkit.StoredDifference relies on:
// ValueDifference equals ValueOne - ValueTwo.
func StoresValueDifference[N pairkit.Number, T pairkit.StoresValueDifference[N]](mk func(tb testing.TB) T) contract.Contract {
	s := testcase.NewSpec(nil)

	s.Test("ValueDifference equals ValueOne minus ValueTwo", func(t *testcase.T) {
		t.Random.Repeat(3, 7, func() {
			v := mk(t)
			assert.Equal(t, v.ValueOne()-v.ValueTwo(), v.ValueDifference())
		})
	})

	s.Test("the stored difference strategy agrees with the generic one", func(t *testcase.T) {
		t.Random.Repeat(3, 7, func() {
			v := mk(t)
			assert.Equal(t,
				pairkit.NoOptimization[N, T]{}.FirstValueSmaller(v),
				pairkit.StoredDifference[N, T]{}.FirstValueSmaller(v))
		})
	})

	return s.AsSuite(fmt.Sprintf("pairkit.StoresValueDifference[%s]", reflectkit.TypeOf[T]().String()))
}

// Equivalent checks that two types built from the same values answer FirstValueSmaller the same way,
// which is expected when they only differ in their optimization tag.
func Equivalent[N pairkit.Number, A pairkit.Interface[N], B pairkit.Interface[N]](
	makeA func(one, two N) A,
	makeB func(one, two N) B,
	opts ...Option[N],
) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("both answer the same for the same values", func(t *testcase.T) {
		t.Random.Repeat(7, 42, func() {
			one, two := c.makeValues(t)
			t.OnFail(func() {
				t.Log("value one:", one)
				t.Log("value two:", two)
			})
			assert.Equal(t, makeA(one, two).FirstValueSmaller(), makeB(one, two).FirstValueSmaller())
		})
	})

	s.Test("equal values are never smaller", func(t *testcase.T) {
		one, _ := c.makeValues(t)
		assert.False(t, makeA(one, one).FirstValueSmaller())
		assert.False(t, makeB(one, one).FirstValueSmaller())
	})

	aName := reflectkit.TypeOf[A]().String()
	bName := reflectkit.TypeOf[B]().String()
	return s.AsSuite(fmt.Sprintf("pairkit.Equivalent[%s, %s]", aName, bName))
}

type overrider[N pairkit.Number, T any] interface {
	pairkit.Interface[N]
	pairkit.Optimized[T]
}

// ManualOverride checks that a type tagged pairkit.ManualOverride actually overrides FirstValueSmaller.
func ManualOverride[N pairkit.Number, T overrider[N, T]](mk func(tb testing.TB) T) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) T {
		return mk(t)
	})

	s.Test("the type is tagged ManualOverride", func(t *testcase.T) {
		assert.Equal(t, pairkit.KindManualOverride, pairkit.KindOf(subject.Get(t)))
	})

	s.Test("FirstValueSmaller is overridden", func(t *testcase.T) {
		v := subject.Get(t)
		assert.NotPanic(t, func() { v.FirstValueSmaller() },
			assert.MessageF("%T must implement FirstValueSmaller on its own", v))
	})

	return s.AsSuite(fmt.Sprintf("pairkit.ManualOverride[%s]", reflectkit.TypeOf[T]().String()))
}

type Option[N pairkit.Number] interface {
	option.Option[Config[N]]
}

type Config[N pairkit.Number] struct {
	// MakeValues supplies the value pairs the subjects are built from.
	MakeValues func(testing.TB) (N, N)
}

var _ Option[int8] = Config[int8]{}

func (c Config[N]) Configure(o *Config[N]) {
	if c.MakeValues != nil {
		o.MakeValues = c.MakeValues
	}
}

func (c Config[N]) makeValues(tb testing.TB) (N, N) {
	if c.MakeValues != nil {
		return c.MakeValues(tb)
	}
	t := testcase.ToT(&tb)
	// [-64, 63] fits every signed scalar, and its differences still fit an int8.
	return N(t.Random.IntBetween(-64, 63)), N(t.Random.IntBetween(-64, 63))
}
