// Package result provides Result[V, E], a container holding either a
// computed value or a declared error, for exception-free control flow
// composition. Internally a Result is an either.Either with the error on
// the left and the value on the right.
//
// Highlights:
// - Ok/Err: direct construction
// - Of/OfRuntime: run a fallible operation and capture its outcome;
//   Of captures only the declared error return and lets panics propagate,
//   OfRuntime is the opt-in that recovers a panic into Err
// - Map/AndThen/And/Or: the monadic algebra; Err short-circuits forward
//   composition, Ok short-circuits recovery
// - ConvertSupplier/ConvertFunction/...: adapters turning fallible
//   operations into Result-returning functions
// - Join/TransposeOption/TransposeResult: flattening and Option nesting
// - Unwrap: the single sanctioned point where a stored error surfaces again
package result
