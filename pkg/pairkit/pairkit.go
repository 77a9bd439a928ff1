// Package pairkit lets a type that holds two values answer
// "is the first value smaller?" with the cheapest strategy its capabilities allow.
//
// A type implements HasTwoValues, and optionally StoresValueDifference,
// then names one optimization tag through Optimized.
// The tag decides which default strategy FirstValueSmaller runs:
//
//	type Holder struct{ One, Two int8 }
//
//	func (h Holder) ValueOne() int8 { return h.One }
//	func (h Holder) ValueTwo() int8 { return h.Two }
//
//	func (Holder) OptimizationDetails() pairkit.Strategy[Holder] {
//		return pairkit.NoOptimization[int8, Holder]{}
//	}
//
//	func (h Holder) FirstValueSmaller() bool { return pairkit.FirstValueSmaller(h) }
//
// A type that knows better can tag itself with ManualOverride
// and write its own FirstValueSmaller body instead of delegating.
package pairkit

import "golang.org/x/exp/constraints"

// Number is the scalar a two-value type holds.
// It must be signed, since a stored difference is tested against zero.
//
// The values are expected to be totally ordered.
// A float NaN is not: every comparison with it is false,
// so FirstValueSmaller reports false and a stored NaN difference means nothing.
// Keeping NaN out of a two-value type is the caller's obligation.
type Number interface {
	constraints.Signed | constraints.Float
}

// HasTwoValues is the minimal capability every two-value type has.
type HasTwoValues[N Number] interface {
	ValueOne() N
	ValueTwo() N
}

// StoresValueDifference is implemented by types that already keep
// the difference between their two values.
// A negative difference means the first value is the smaller one.
type StoresValueDifference[N Number] interface {
	HasTwoValues[N]
	// ValueDifference must equal ValueOne() - ValueTwo().
	// Nothing checks this at runtime, a wrong difference yields a wrong answer.
	ValueDifference() N
}
