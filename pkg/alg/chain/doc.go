// Package chain wraps a Result in a fluent value so same-type pipelines
// read linearly. Every step short-circuits on an error exactly like the
// result package functions it delegates to.
//
// Highlights:
// - Start/FromValue: open a chain
// - Then/ThenTry/Map: compose further steps over the value
// - Ensure: side effects without changing the outcome
// - Or/And: combine chains, success-biased and failure-biased
// - Finally: collapse to a final value via both handlers
package chain
