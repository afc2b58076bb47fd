package result

import (
	"fmt"
	"reflect"

	"github.com/ib-77/alg/pkg/alg/throwing"
	"github.com/ib-77/alg/pkg/alg/unit"
)

// isNil reports whether the declared error value signals success. A typed
// nil pointer stored in an error interface is still a nil error here.
func isNil(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Of performs an operation declaring its failure kind in its signature and
// captures the outcome: the returned value as Ok, a non-nil returned error
// as Err. A panic raised by the operation is the undeclared failure
// category and is never captured; it propagates out of Of itself.
func Of[V any, E error](f throwing.Supplier[V, E]) Result[V, E] {
	v, err := f()
	if isNil(err) {
		return Ok[V, E](v)
	}
	return Err[V](err)
}

// OfRunnable is Of for an operation with no result; success carries Unit.
func OfRunnable[E error](f throwing.Runnable[E]) Result[unit.Unit, E] {
	return Of(unit.ConvertRunnable(f))
}

// OfRuntime performs an operation whose failures arrive as panics and
// captures them: a normal return as Ok, a recovered panic as Err. This is
// the deliberate opt-in for the undeclared failure category; call sites
// that expect declared failures use Of instead.
func OfRuntime[V any](f func() V) (res Result[V, error]) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				res = Err[V](err)
				return
			}
			res = Err[V](fmt.Errorf("panic: %v", r))
		}
	}()
	return Ok[V, error](f())
}

// OfRuntimeRunnable is OfRuntime for an operation with no result.
func OfRuntimeRunnable(f func()) Result[unit.Unit, error] {
	return OfRuntime(unit.Convert(f))
}

// ConvertSupplier turns a fallible supplier into one that yields a Result
// on every invocation instead of failing.
func ConvertSupplier[V any, E error](f throwing.Supplier[V, E]) func() Result[V, E] {
	return func() Result[V, E] {
		return Of(f)
	}
}

// ConvertRunnable turns a fallible operation with no result into a supplier
// of a Unit-valued Result.
func ConvertRunnable[E error](f throwing.Runnable[E]) func() Result[unit.Unit, E] {
	return func() Result[unit.Unit, E] {
		return OfRunnable(f)
	}
}

// ConvertFunction turns a fallible function into one that yields a Result
// on every invocation instead of failing.
func ConvertFunction[T, V any, E error](f throwing.Func[T, V, E]) func(T) Result[V, E] {
	return func(t T) Result[V, E] {
		return Of(func() (V, E) { return f(t) })
	}
}

// ConvertConsumer turns a fallible consumer into a function that yields a
// Unit-valued Result on every invocation instead of failing.
func ConvertConsumer[T any, E error](f throwing.Consumer[T, E]) func(T) Result[unit.Unit, E] {
	return func(t T) Result[unit.Unit, E] {
		return OfRunnable[E](func() E { return f(t) })
	}
}
