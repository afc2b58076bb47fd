package option

import (
	"errors"
	"fmt"
	"reflect"
)

// Option represents an optional value: either Some and contains a value, or
// None and does not. The active case is fixed at construction and the value
// never mutates, so Options are safe to share freely.
type Option[V any] struct {
	value V
	some  bool
}

// Some wraps a value in an Option.
func Some[V any](value V) Option[V] {
	return Option[V]{value: value, some: true}
}

// None returns the empty Option.
func None[V any]() Option[V] {
	return Option[V]{}
}

// FromPtr converts a nullable pointer into an Option, treating nil as None.
func FromPtr[V any](ptr *V) Option[V] {
	if ptr == nil {
		return None[V]()
	}
	return Some(*ptr)
}

// FromOk converts a comma-ok pair into an Option, as produced by map
// lookups and type assertions.
func FromOk[V any](value V, ok bool) Option[V] {
	if !ok {
		return None[V]()
	}
	return Some(value)
}

// IsSome reports whether a value is present.
func (o Option[V]) IsSome() bool {
	return o.some
}

// IsNone reports whether no value is present.
func (o Option[V]) IsNone() bool {
	return !o.some
}

// Match performs the operation pertaining to the active case.
func (o Option[V]) Match(some func(V), none func()) {
	if o.some {
		some(o.value)
	} else {
		none()
	}
}

// UnsafeMatch performs the operation pertaining to the active case, where
// either branch may fail. The branch's error is returned verbatim.
func (o Option[V]) UnsafeMatch(some func(V) error, none func() error) error {
	if o.some {
		return some(o.value)
	}
	return none()
}

// And returns other if this Option holds a value, otherwise None.
func (o Option[V]) And(other Option[V]) Option[V] {
	if o.some {
		return other
	}
	return None[V]()
}

// Or returns this Option if it holds a value, otherwise other.
func (o Option[V]) Or(other Option[V]) Option[V] {
	if o.some {
		return o
	}
	return other
}

// OrElse returns this Option if it holds a value, otherwise the Option
// computed by s. s is not invoked when a value is present.
func (o Option[V]) OrElse(s func() Option[V]) Option[V] {
	if o.some {
		return o
	}
	return s()
}

// Xor returns whichever of the two Options holds a value if exactly one
// does, otherwise None.
func (o Option[V]) Xor(other Option[V]) Option[V] {
	switch {
	case o.some && !other.some:
		return o
	case !o.some && other.some:
		return other
	default:
		return None[V]()
	}
}

// Filter keeps the value only if pred holds for it, otherwise None.
func (o Option[V]) Filter(pred func(V) bool) Option[V] {
	if o.some && pred(o.value) {
		return o
	}
	return None[V]()
}

// Unwrap returns the contained value, panicking if there is none.
func (o Option[V]) Unwrap() V {
	return o.Expect("option: called Unwrap on a None value")
}

// UnwrapOr returns the contained value, or the given default.
func (o Option[V]) UnwrapOr(value V) V {
	if o.some {
		return o.value
	}
	return value
}

// UnwrapOrElse returns the contained value, or computes one.
func (o Option[V]) UnwrapOrElse(s func() V) V {
	if o.some {
		return o.value
	}
	return s()
}

// Expect returns the contained value, panicking with the given message if
// there is none.
func (o Option[V]) Expect(message string) V {
	return o.ExpectErr(errors.New(message))
}

// ExpectErr returns the contained value, panicking with the given error if
// there is none.
func (o Option[V]) ExpectErr(err error) V {
	if !o.some {
		panic(err)
	}
	return o.value
}

// WhenSome performs a side effect on the value if one is present.
func (o Option[V]) WhenSome(f func(V)) {
	if o.some {
		f(o.value)
	}
}

// Equals reports structural equality: both None, or both Some with equal
// values.
func (o Option[V]) Equals(other Option[V]) bool {
	if o.some != other.some {
		return false
	}
	if !o.some {
		return true
	}
	return reflect.DeepEqual(o.value, other.value)
}

func (o Option[V]) String() string {
	if o.some {
		return fmt.Sprintf("Option.some(%v)", o.value)
	}
	return "Option.none()"
}

// MatchThen applies the function pertaining to the active case and returns
// its result.
func MatchThen[V, T any](o Option[V], some func(V) T, none func() T) T {
	if o.some {
		return some(o.value)
	}
	return none()
}

// UnsafeMatchThen applies the function pertaining to the active case, where
// either branch may fail. The branch's error is returned verbatim.
func UnsafeMatchThen[V, T any](o Option[V], some func(V) (T, error), none func() (T, error)) (T, error) {
	if o.some {
		return some(o.value)
	}
	return none()
}

// Map applies f to the contained value if one is present. The resulting
// Option always has the same structure as the input.
func Map[V, T any](o Option[V], f func(V) T) Option[T] {
	if o.some {
		return Some(f(o.value))
	}
	return None[T]()
}

// MapOr applies f to the contained value and returns the result, or the
// given default when no value is present.
func MapOr[V, T any](o Option[V], f func(V) T, value T) T {
	return MapOrElse(o, f, func() T { return value })
}

// MapOrElse applies f to the contained value and returns the result, or the
// computed default when no value is present.
func MapOrElse[V, T any](o Option[V], f func(V) T, s func() T) T {
	if o.some {
		return f(o.value)
	}
	return s()
}

// AndThen returns f applied to the contained value, or None if there is no
// value. Some languages call this operation flat-map.
func AndThen[V, T any](o Option[V], f func(V) Option[T]) Option[T] {
	if o.some {
		return f(o.value)
	}
	return None[T]()
}
