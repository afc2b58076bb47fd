package option

import "errors"

// ErrExhausted is the panic value of Next once the single element has been
// consumed.
var ErrExhausted = errors.New("option: called Next on an exhausted iterator")

// Iterator is a view over an Option yielding its value at most once.
type Iterator[V any] struct {
	rest Option[V]
}

// Iter returns an iterator over the Option. A fresh iterator restarts the
// sequence.
func (o Option[V]) Iter() *Iterator[V] {
	return &Iterator[V]{rest: o}
}

// HasNext reports whether an element remains.
func (it *Iterator[V]) HasNext() bool {
	return it.rest.IsSome()
}

// Next returns the remaining element, panicking with ErrExhausted if it has
// already been consumed.
func (it *Iterator[V]) Next() V {
	v := it.rest.ExpectErr(ErrExhausted)
	it.rest = None[V]()
	return v
}
