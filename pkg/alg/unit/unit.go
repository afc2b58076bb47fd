package unit

import "github.com/ib-77/alg/pkg/alg/throwing"

// Unit is the type with exactly one value. It is the result type of
// operations that succeed without producing anything.
type Unit struct{}

// Value is the sole value of Unit.
var Value = Unit{}

func (Unit) String() string {
	return "unit"
}

// Convert turns an operation with no result into one returning Unit.
func Convert(f func()) func() Unit {
	return func() Unit {
		f()
		return Value
	}
}

// ConvertConsumer turns a consuming operation into a function returning Unit.
func ConvertConsumer[T any](f func(T)) func(T) Unit {
	return func(t T) Unit {
		f(t)
		return Value
	}
}

// ConvertRunnable turns a fallible operation with no result into a fallible
// supplier of Unit.
func ConvertRunnable[E error](f throwing.Runnable[E]) throwing.Supplier[Unit, E] {
	return func() (Unit, E) {
		return Value, f()
	}
}

// ConvertThrowingConsumer turns a fallible consuming operation into a
// fallible function returning Unit.
func ConvertThrowingConsumer[T any, E error](f throwing.Consumer[T, E]) throwing.Func[T, Unit, E] {
	return func(t T) (Unit, E) {
		return Value, f(t)
	}
}
