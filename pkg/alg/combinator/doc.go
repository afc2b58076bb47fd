// Package combinator contains small, pure, stateless higher-order functions
// shared by the container packages and exposed for reuse.
//
// Highlights:
// - Id/Const/Noop: the trivial combinators
// - Compose: left-to-right function composition
// - Flip: swap the parameters of a two-argument function
// - Toss: panic with an error, typed to any return position
// - Curry/Uncurry: move between two-argument and curried forms
package combinator
