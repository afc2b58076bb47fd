// Package unit provides the Unit sentinel value and adapters that lift
// operations with no result into value-returning ones, so void-like
// operations can flow through the container types uniformly.
package unit
