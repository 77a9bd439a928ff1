package pairkit

// Strategy is the default FirstValueSmaller implementation bound to an optimization tag.
//
// The set of strategies is closed,
// only NoOptimization, StoredDifference and ManualOverride implement it.
type Strategy[T any] interface {
	// Kind tells which tag the strategy belongs to.
	Kind() Kind
	// FirstValueSmaller reports whether v's first value is strictly less than its second.
	FirstValueSmaller(v T) bool

	strategy()
}

var (
	_ Strategy[HasTwoValues[int]]          = NoOptimization[int, HasTwoValues[int]]{}
	_ Strategy[StoresValueDifference[int]] = StoredDifference[int, StoresValueDifference[int]]{}
	_ Strategy[HasTwoValues[int]]          = ManualOverride[int, HasTwoValues[int]]{}
)
