// Package option provides Option[V], a container holding zero or one value.
//
// Highlights:
// - Some/None/FromPtr/FromOk: construction
// - Match/MatchThen: total pattern matching over both cases
// - Map/AndThen/Filter: structure-aware transformation, None short-circuits
// - And/Or/OrElse/Xor: combination of two Options
// - Unwrap/UnwrapOr/Expect: extraction, panicking only where documented
//
// The zero value of Option is None, so Options embed safely in other
// structs without initialization.
package option
