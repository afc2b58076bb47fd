// Package either provides Either[L, R], the canonical two-case disjoint
// union. By convention Left carries the alternative or error-like branch and
// Right carries the main branch; result.Result is built on this type with
// the error on the left.
//
// Highlights:
// - Left/Right: construction
// - Match/MatchThen/Bimap: dispatch on the active case
// - MapLeft/MapRight: transform one side, the other passes through
// - LeftAndThen/RightAndThen: monadic bind on the named side
// - Flip: swap sides
// - Collapse/CollapseThen: treat both payloads uniformly
package either
