package pairkit_test

import (
	"fmt"

	"go.llib.dev/specialize/pkg/pairkit"
)

type Interval struct{ Start, End int }

func (i Interval) ValueOne() int { return i.Start }
func (i Interval) ValueTwo() int { return i.End }

func (Interval) OptimizationDetails() pairkit.Strategy[Interval] {
	return pairkit.NoOptimization[int, Interval]{}
}

func (i Interval) FirstValueSmaller() bool { return pairkit.FirstValueSmaller(i) }

type Span struct{ Start, Length int }

func (s Span) ValueOne() int        { return s.Start }
func (s Span) ValueTwo() int        { return s.Start + s.Length }
func (s Span) ValueDifference() int { return -s.Length }

func (Span) OptimizationDetails() pairkit.Strategy[Span] {
	return pairkit.StoredDifference[int, Span]{}
}

func (s Span) FirstValueSmaller() bool { return pairkit.FirstValueSmaller(s) }

type Signed struct{ Value int }

func (s Signed) ValueOne() int { return 0 }
func (s Signed) ValueTwo() int { return s.Value }

func (Signed) OptimizationDetails() pairkit.Strategy[Signed] {
	return pairkit.ManualOverride[int, Signed]{}
}

func (s Signed) FirstValueSmaller() bool { return s.Value > 0 }

func ExampleFirstValueSmaller() {
	var vs = []pairkit.Interface[int]{
		Interval{Start: 3, End: 7},
		Span{Start: 7, Length: -4},
		Signed{Value: 5},
	}
	for _, v := range vs {
		fmt.Println(v.FirstValueSmaller())
	}
	// Output:
	// true
	// false
	// true
}

func ExampleKindOf() {
	fmt.Println(pairkit.KindOf(Interval{}))
	fmt.Println(pairkit.KindOf(Span{}))
	fmt.Println(pairkit.KindOf(Signed{}))
	// Output:
	// NoOptimization
	// StoredDifference
	// ManualOverride
}
