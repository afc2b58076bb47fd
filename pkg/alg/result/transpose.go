package result

import "github.com/ib-77/alg/pkg/alg/option"

// Join flattens a Result whose value is itself a Result with the same
// error kind.
func Join[V any, E error](r Result[Result[V, E], E]) Result[V, E] {
	return AndThen(r, func(inner Result[V, E]) Result[V, E] { return inner })
}

// TransposeOption exchanges the nesting of an Option of a Result into a
// Result of an Option:
//
//	Some(Ok(v))  -> Ok(Some(v))
//	Some(Err(e)) -> Err(e)
//	None         -> Ok(None)
func TransposeOption[V any, E error](m option.Option[Result[V, E]]) Result[option.Option[V], E] {
	return option.MatchThen(m,
		func(r Result[V, E]) Result[option.Option[V], E] {
			return Map(r, option.Some[V])
		},
		func() Result[option.Option[V], E] {
			return Ok[option.Option[V], E](option.None[V]())
		})
}

// TransposeResult exchanges the nesting of a Result of an Option into an
// Option of a Result:
//
//	Ok(Some(v)) -> Some(Ok(v))
//	Ok(None)    -> None
//	Err(e)      -> Some(Err(e))
//
// TransposeResult and TransposeOption are mutual inverses.
func TransposeResult[V any, E error](r Result[option.Option[V], E]) option.Option[Result[V, E]] {
	return MatchThen(r,
		func(m option.Option[V]) option.Option[Result[V, E]] {
			return option.Map(m, Ok[V, E])
		},
		func(e E) option.Option[Result[V, E]] {
			return option.Some(Err[V](e))
		})
}
