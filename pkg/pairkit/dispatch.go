package pairkit

// Optimized associates a type with exactly one optimization tag.
//
// OptimizationDetails is only ever called on the zero value of the type,
// so the tag is a property of the type and never of a value's contents.
// Pointer types must therefore return their tag without dereferencing the receiver.
// Choosing a tag whose capability the type lacks, like StoredDifference
// on a type without ValueDifference, does not compile.
type Optimized[T any] interface {
	OptimizationDetails() Strategy[T]
}

// Interface is what callers depend on.
// Implementations either delegate to FirstValueSmaller
// or supply their own body, which then takes precedence over any tag default.
type Interface[N Number] interface {
	HasTwoValues[N]
	FirstValueSmaller() bool
}

// FirstValueSmaller runs the default strategy of the tag v's type declared.
func FirstValueSmaller[T Optimized[T]](v T) bool {
	return resolve(v).FirstValueSmaller(v)
}

// KindOf tells which optimization tag v's type declared.
func KindOf[T Optimized[T]](v T) Kind {
	return resolve(v).Kind()
}

func resolve[T Optimized[T]](v T) Strategy[T] {
	var zero T
	s := zero.OptimizationDetails()
	if s == nil {
		err := ErrUnboundTag.F("%T returned no optimization tag", v)
		logFatal(err, v, "")
		panic(err)
	}
	return s
}
