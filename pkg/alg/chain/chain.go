package chain

import (
	"github.com/ib-77/alg/pkg/alg/result"
	"github.com/ib-77/alg/pkg/alg/throwing"
)

// Chain carries a Result through a fluent pipeline.
type Chain[T any, E error] struct {
	res result.Result[T, E]
}

// Start opens a chain from an existing Result.
func Start[T any, E error](r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// FromValue opens a chain from a plain value.
func FromValue[T any, E error](v T) Chain[T, E] {
	return Start(result.Ok[T, E](v))
}

// Result returns the underlying Result.
func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Then composes a step that already returns a Result.
func (c Chain[T, E]) Then(f func(T) result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: result.AndThen(c.res, f)}
}

// ThenTry composes a fallible step, capturing its declared error.
func (c Chain[T, E]) ThenTry(f throwing.Func[T, T, E]) Chain[T, E] {
	return Chain[T, E]{res: result.AndThenT(c.res, f)}
}

// Map composes a pure transformation.
func (c Chain[T, E]) Map(f func(T) T) Chain[T, E] {
	return Chain[T, E]{res: result.Map(c.res, f)}
}

// Ensure triggers side effects for the active case without changing the
// outcome. Either handler may be nil.
func (c Chain[T, E]) Ensure(onOk func(T), onErr func(E)) Chain[T, E] {
	if onOk != nil {
		c.res.WhenOk(onOk)
	}
	if onErr != nil {
		c.res.WhenErr(onErr)
	}
	return c
}

// Or keeps this chain if it succeeded, otherwise the alternative.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	return Chain[T, E]{res: result.Or(c.res, alternative.res)}
}

// And keeps the first failure, otherwise the required chain's outcome.
func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	return Chain[T, E]{res: result.And(c.res, required.res)}
}

// Finally collapses the chain to a final value via the handler for the
// active case.
func Finally[T any, E error, U any](c Chain[T, E], onOk func(T) U, onErr func(E) U) U {
	return result.MatchThen(c.res, onOk, onErr)
}
