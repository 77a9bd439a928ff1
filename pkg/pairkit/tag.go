package pairkit

// Kind names an optimization tag.
type Kind string

const (
	KindNoOptimization   Kind = "NoOptimization"
	KindStoredDifference Kind = "StoredDifference"
	KindManualOverride   Kind = "ManualOverride"
)

func (k Kind) String() string { return string(k) }

// NoOptimization selects the generic strategy,
// which evaluates both values and compares them.
type NoOptimization[N Number, T HasTwoValues[N]] struct{}

func (NoOptimization[N, T]) Kind() Kind { return KindNoOptimization }

func (NoOptimization[N, T]) FirstValueSmaller(v T) bool {
	return v.ValueOne() < v.ValueTwo()
}

func (NoOptimization[N, T]) strategy() {}

// StoredDifference selects the shortcut for types that keep ValueOne-ValueTwo around.
// Neither ValueOne nor ValueTwo is evaluated.
type StoredDifference[N Number, T StoresValueDifference[N]] struct{}

func (StoredDifference[N, T]) Kind() Kind { return KindStoredDifference }

func (StoredDifference[N, T]) FirstValueSmaller(v T) bool {
	return v.ValueDifference() < 0
}

func (StoredDifference[N, T]) strategy() {}

// ManualOverride tells that the type implements FirstValueSmaller on its own.
//
// Its strategy has no usable default:
// a type tagged ManualOverride that still delegates to FirstValueSmaller
// logs a fatal entry and panics with ErrNotImplemented on the first call.
type ManualOverride[N Number, T HasTwoValues[N]] struct{}

func (ManualOverride[N, T]) Kind() Kind { return KindManualOverride }

func (tag ManualOverride[N, T]) FirstValueSmaller(v T) bool {
	err := ErrNotImplemented.F("%T is tagged %s but does not override FirstValueSmaller", v, tag.Kind())
	logFatal(err, v, tag.Kind())
	panic(err)
}

func (ManualOverride[N, T]) strategy() {}
