package result

import (
	"fmt"

	"github.com/ib-77/alg/pkg/alg/combinator"
	"github.com/ib-77/alg/pkg/alg/either"
	"github.com/ib-77/alg/pkg/alg/option"
	"github.com/ib-77/alg/pkg/alg/throwing"
	"github.com/ib-77/alg/pkg/alg/unit"
)

// Result holds either a value of type V or a declared error of type E.
// The active case is fixed at construction and never changes.
type Result[V any, E error] struct {
	either either.Either[E, V]
}

// Ok constructs a Result containing the given value.
func Ok[V any, E error](v V) Result[V, E] {
	return Result[V, E]{either: either.Right[E](v)}
}

// Err constructs a Result containing the given error.
func Err[V any, E error](e E) Result[V, E] {
	return Result[V, E]{either: either.Left[E, V](e)}
}

// IsOk reports whether a value is present.
func (r Result[V, E]) IsOk() bool {
	return r.either.IsRight()
}

// IsErr reports whether an error is present.
func (r Result[V, E]) IsErr() bool {
	return r.either.IsLeft()
}

// Match performs the operation pertaining to the active case.
func (r Result[V, E]) Match(ok func(V), err func(E)) {
	r.either.Match(err, ok)
}

// UnsafeMatch performs the operation pertaining to the active case, where
// either branch may fail. The branch's error is returned verbatim.
func (r Result[V, E]) UnsafeMatch(ok func(V) error, err func(E) error) error {
	return r.either.UnsafeMatch(err, ok)
}

// WhenOk performs a side effect on the value if one is present.
func (r Result[V, E]) WhenOk(f func(V)) {
	r.either.WhenRight(f)
}

// WhenErr performs a side effect on the error if one is present.
func (r Result[V, E]) WhenErr(f func(E)) {
	r.either.WhenLeft(f)
}

// Peek observes the value without altering the Result, unless the observing
// operation itself fails, in which case its error replaces the value.
func (r Result[V, E]) Peek(f func(V) Result[unit.Unit, E]) Result[V, E] {
	return either.MatchThen(r.either,
		func(e E) Result[V, E] { return Err[V](e) },
		func(v V) Result[V, E] {
			return either.MatchThen(f(v).either,
				func(e E) Result[V, E] { return Err[V](e) },
				func(unit.Unit) Result[V, E] { return Ok[V, E](v) })
		})
}

// PeekT is Peek over a fallible consumer.
func (r Result[V, E]) PeekT(f throwing.Consumer[V, E]) Result[V, E] {
	return r.Peek(ConvertConsumer(f))
}

// AndDoT applies a fallible consumer to the value and discards it, keeping
// only the outcome.
func (r Result[V, E]) AndDoT(f throwing.Consumer[V, E]) Result[unit.Unit, E] {
	return AndThen(r, ConvertConsumer(f))
}

// ConvertError collapses the Result to a plain value by converting any
// error into a value. Total, never fails.
func (r Result[V, E]) ConvertError(f func(E) V) V {
	return either.MatchThen(r.either, f, combinator.Id[V])
}

// Unwrap returns the value, or panics with the contained error. This is the
// designated point where a stored error may surface as a raised failure.
func (r Result[V, E]) Unwrap() V {
	return either.MatchThen(r.either,
		func(e E) V { return combinator.Toss[V](e) },
		combinator.Id[V])
}

// UnwrapOr returns the value, or the given default if there is an error.
func (r Result[V, E]) UnwrapOr(value V) V {
	return r.either.UnwrapRightOr(value)
}

// Get deconstructs the Result into Go's native pair shape. It is the
// inverse of Of: r.Equals(Of(r.Get)) for every r.
func (r Result[V, E]) Get() (V, E) {
	var zeroV V
	var zeroE E
	return r.either.UnwrapRightOr(zeroV), r.either.UnwrapLeftOr(zeroE)
}

// Collapse applies a function that accepts either the value or the error,
// regardless of which is present. Useful for uniform reporting.
func (r Result[V, E]) Collapse(f func(any)) {
	r.either.Collapse(f)
}

// ToOption returns the value as an Option, discarding any error.
func (r Result[V, E]) ToOption() option.Option[V] {
	return r.either.RightToOption()
}

// Iter returns an iterator yielding the value at most once; it is
// immediately exhausted when an error is present.
func (r Result[V, E]) Iter() *option.Iterator[V] {
	return r.ToOption().Iter()
}

// Equals reports structural equality: the same case is active and the
// payloads are equal. A Result is comparable only to another Result of the
// same shape, never to a bare Either.
func (r Result[V, E]) Equals(other Result[V, E]) bool {
	return r.either.Equals(other.either)
}

func (r Result[V, E]) String() string {
	return either.MatchThen(r.either,
		func(e E) string { return fmt.Sprintf("Result.err(%v)", e) },
		func(v V) string { return fmt.Sprintf("Result.ok(%v)", v) })
}
