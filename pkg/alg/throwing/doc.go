// Package throwing defines function shapes whose signatures name the error
// kind they can fail with. They are the expected form of any fallible
// operation handed to result.Of, result.AndThenT and the other T-suffixed
// adapters: a declared failure is the E value the shape returns, while a
// panic stays outside the contract and is never captured.
package throwing
