package result

import (
	"github.com/ib-77/alg/pkg/alg/either"
	"github.com/ib-77/alg/pkg/alg/throwing"
)

// MatchThen applies the function pertaining to the active case and returns
// its result. Both branches must return the same type.
func MatchThen[V any, E error, T any](r Result[V, E], ok func(V) T, err func(E) T) T {
	return either.MatchThen(r.either, err, ok)
}

// UnsafeMatchThen applies the function pertaining to the active case, where
// either branch may fail. The branch's error is returned verbatim.
func UnsafeMatchThen[V any, E error, T any](r Result[V, E], ok func(V) (T, error), err func(E) (T, error)) (T, error) {
	return either.UnsafeMatchThen(r.either, err, ok)
}

// Map transforms the value if present; an error passes through unchanged.
func Map[V, T any, E error](r Result[V, E], f func(V) T) Result[T, E] {
	return Result[T, E]{either: either.MapRight(r.either, f)}
}

// MapError transforms the error if present; a value passes through
// unchanged.
func MapError[V any, E, F error](r Result[V, E], f func(E) F) Result[V, F] {
	return Result[V, F]{either: either.MapLeft(r.either, f)}
}

// AndThen binds the value through f, which may itself fail with the same
// error kind; an error short-circuits and passes through unchanged.
func AndThen[V, T any, E error](r Result[V, E], f func(V) Result[T, E]) Result[T, E] {
	return MatchThen(r, f, Err[T, E])
}

// AndThenT is AndThen over a fallible function.
func AndThenT[V, T any, E error](r Result[V, E], f throwing.Func[V, T, E]) Result[T, E] {
	return AndThen(r, ConvertFunction(f))
}

// And sequences to another Result, discarding this one's value but
// propagating this one's error if present.
func And[V, T any, E error](r Result[V, E], other Result[T, E]) Result[T, E] {
	return AndGet(r, func() Result[T, E] { return other })
}

// AndGet is And with the next Result computed lazily; the supplier is not
// invoked when an error is present.
func AndGet[V, T any, E error](r Result[V, E], f func() Result[T, E]) Result[T, E] {
	return AndThen(r, func(V) Result[T, E] { return f() })
}

// AndGetT is AndGet over a fallible supplier.
func AndGetT[V, T any, E error](r Result[V, E], f throwing.Supplier[T, E]) Result[T, E] {
	return AndGet(r, ConvertSupplier(f))
}

// Or recovers from an error by falling back to the alternative, which may
// carry a different error kind; a value short-circuits and the alternative
// is never consulted.
func Or[V any, E, F error](r Result[V, E], other Result[V, F]) Result[V, F] {
	return OrGet(r, func() Result[V, F] { return other })
}

// OrGet is Or with the alternative computed lazily; the supplier is not
// invoked when a value is present.
func OrGet[V any, E, F error](r Result[V, E], f func() Result[V, F]) Result[V, F] {
	return MatchThen(r, Ok[V, F], func(E) Result[V, F] { return f() })
}

// OrGetT is OrGet over a fallible supplier.
func OrGetT[V any, E, F error](r Result[V, E], f throwing.Supplier[V, F]) Result[V, F] {
	return OrGet(r, ConvertSupplier(f))
}

// Set discards the value and replaces it with a constant, preserving any
// error.
func Set[V, T any, E error](r Result[V, E], value T) Result[T, E] {
	return And(r, Ok[T, E](value))
}

// Bimap combines two independent Results, applying f only if both hold
// values. If either holds an error it propagates, preferring r's error when
// both do.
func Bimap[V, U, T any, E error](r Result[V, E], other Result[U, E], f func(V, U) T) Result[T, E] {
	return AndThen(r, func(v V) Result[T, E] {
		return Map(other, func(u U) T { return f(v, u) })
	})
}

// CollapseThen applies a function that accepts either the value or the
// error, regardless of which is present, and returns its result.
func CollapseThen[V any, E error, T any](r Result[V, E], f func(any) T) T {
	return either.CollapseThen(r.either, f)
}
