package either

import (
	"fmt"
	"reflect"

	"github.com/ib-77/alg/pkg/alg/option"
)

// Either holds exactly one value, on either its left or its right side. The
// active side is fixed at construction and never changes.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left constructs an Either carrying a left value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right constructs an Either carrying a right value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

// IsLeft reports whether the left side is active.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether the right side is active.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Match performs the operation pertaining to the active side.
func (e Either[L, R]) Match(onLeft func(L), onRight func(R)) {
	if e.isRight {
		onRight(e.right)
	} else {
		onLeft(e.left)
	}
}

// UnsafeMatch performs the operation pertaining to the active side, where
// either branch may fail. The branch's error is returned verbatim.
func (e Either[L, R]) UnsafeMatch(onLeft func(L) error, onRight func(R) error) error {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// WhenLeft performs a side effect only if the left side is active.
func (e Either[L, R]) WhenLeft(f func(L)) {
	if !e.isRight {
		f(e.left)
	}
}

// WhenRight performs a side effect only if the right side is active.
func (e Either[L, R]) WhenRight(f func(R)) {
	if e.isRight {
		f(e.right)
	}
}

// LeftToOption returns the left payload as an Option, None if the right
// side is active.
func (e Either[L, R]) LeftToOption() option.Option[L] {
	if e.isRight {
		return option.None[L]()
	}
	return option.Some(e.left)
}

// RightToOption returns the right payload as an Option, None if the left
// side is active.
func (e Either[L, R]) RightToOption() option.Option[R] {
	if e.isRight {
		return option.Some(e.right)
	}
	return option.None[R]()
}

// UnwrapLeftOr returns the left payload if active, otherwise the default.
func (e Either[L, R]) UnwrapLeftOr(l L) L {
	if e.isRight {
		return l
	}
	return e.left
}

// UnwrapRightOr returns the right payload if active, otherwise the default.
func (e Either[L, R]) UnwrapRightOr(r R) R {
	if e.isRight {
		return e.right
	}
	return r
}

// Flip swaps the sides: a left value becomes a right value and vice versa.
func (e Either[L, R]) Flip() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// Collapse applies a function that accepts either payload, regardless of
// which side is active. Useful for uniform reporting.
func (e Either[L, R]) Collapse(f func(any)) {
	if e.isRight {
		f(e.right)
	} else {
		f(e.left)
	}
}

// Equals reports structural equality: the same side is active and the
// payloads are equal.
func (e Either[L, R]) Equals(other Either[L, R]) bool {
	if e.isRight != other.isRight {
		return false
	}
	if e.isRight {
		return reflect.DeepEqual(e.right, other.right)
	}
	return reflect.DeepEqual(e.left, other.left)
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Either.right(%v)", e.right)
	}
	return fmt.Sprintf("Either.left(%v)", e.left)
}

// MatchThen applies the function pertaining to the active side and returns
// its result. Both branches must return the same type.
func MatchThen[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// UnsafeMatchThen applies the function pertaining to the active side, where
// either branch may fail. The branch's error is returned verbatim.
func UnsafeMatchThen[L, R, T any](e Either[L, R], onLeft func(L) (T, error), onRight func(R) (T, error)) (T, error) {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapLeft transforms the left payload if active; a right value passes
// through unchanged.
func MapLeft[L, R, T any](e Either[L, R], f func(L) T) Either[T, R] {
	if e.isRight {
		return Right[T](e.right)
	}
	return Left[T, R](f(e.left))
}

// MapRight transforms the right payload if active; a left value passes
// through unchanged.
func MapRight[L, R, T any](e Either[L, R], f func(R) T) Either[L, T] {
	if e.isRight {
		return Right[L](f(e.right))
	}
	return Left[L, T](e.left)
}

// Bimap applies the appropriate one of two functions depending on the
// active side. Only that function is evaluated.
func Bimap[L, R, L2, R2 any](e Either[L, R], onLeft func(L) L2, onRight func(R) R2) Either[L2, R2] {
	if e.isRight {
		return Right[L2](onRight(e.right))
	}
	return Left[L2, R2](onLeft(e.left))
}

// LeftAndThen binds on the left side: if it is active the whole value is
// replaced by f's result, which may activate either side. A right value
// passes through unchanged.
func LeftAndThen[L, R, T any](e Either[L, R], f func(L) Either[T, R]) Either[T, R] {
	if e.isRight {
		return Right[T](e.right)
	}
	return f(e.left)
}

// RightAndThen binds on the right side: if it is active the whole value is
// replaced by f's result, which may activate either side. A left value
// passes through unchanged.
func RightAndThen[L, R, T any](e Either[L, R], f func(R) Either[L, T]) Either[L, T] {
	if e.isRight {
		return f(e.right)
	}
	return Left[L, T](e.left)
}

// CollapseThen applies a function that accepts either payload, regardless
// of which side is active, and returns its result.
func CollapseThen[L, R, T any](e Either[L, R], f func(any) T) T {
	if e.isRight {
		return f(e.right)
	}
	return f(e.left)
}
