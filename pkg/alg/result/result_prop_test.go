package result

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ib-77/alg/pkg/alg/option"
)

func TestResultFunctorLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("mapping with identity changes nothing", prop.ForAll(
		func(n int) bool {
			r := Ok[int, error](n)
			return Map(r, func(v int) int { return v }).Equals(r)
		},
		gen.Int(),
	))

	properties.Property("mapping a composition equals mapping in sequence", prop.ForAll(
		func(n int) bool {
			f := func(v int) int { return v + 1 }
			g := func(v int) int { return v * 2 }
			r := Ok[int, error](n)
			return Map(Map(r, f), g).Equals(Map(r, func(v int) int { return g(f(v)) }))
		},
		gen.Int(),
	))

	properties.Property("errors pass through any mapping", prop.ForAll(
		func(msg string) bool {
			e := errors.New(msg)
			r := Err[int](e)
			return Map(r, func(v int) int { return v + 1 }).Equals(Err[int](e))
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestResultMonadLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	f := func(n int) Result[int, error] { return Ok[int, error](n + 1) }
	g := func(n int) Result[int, error] {
		if n%2 == 0 {
			return Ok[int, error](n / 2)
		}
		return Err[int](errors.New("odd"))
	}

	properties.Property("left identity", prop.ForAll(
		func(n int) bool {
			return AndThen(Ok[int, error](n), f).Equals(f(n))
		},
		gen.Int(),
	))

	properties.Property("right identity", prop.ForAll(
		func(n int) bool {
			r := Ok[int, error](n)
			return AndThen(r, Ok[int, error]).Equals(r)
		},
		gen.Int(),
	))

	properties.Property("associativity", prop.ForAll(
		func(n int) bool {
			r := Ok[int, error](n)
			left := AndThen(AndThen(r, f), g)
			right := AndThen(r, func(v int) Result[int, error] { return AndThen(f(v), g) })
			return left.Equals(right)
		},
		gen.Int(),
	))

	properties.Property("an error absorbs AndThen", prop.ForAll(
		func(msg string) bool {
			e := errors.New(msg)
			return AndThen(Err[int](e), f).Equals(Err[int](e))
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestTransposeRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Option of Result survives a double transpose", prop.ForAll(
		func(n int, present, failed bool) bool {
			var m option.Option[Result[int, error]]
			switch {
			case !present:
				m = option.None[Result[int, error]]()
			case failed:
				m = option.Some(Err[int](errors.New("boom")))
			default:
				m = option.Some(Ok[int, error](n))
			}
			return TransposeResult(TransposeOption(m)).Equals(m)
		},
		gen.Int(), gen.Bool(), gen.Bool(),
	))

	properties.Property("Result of Option survives a double transpose", prop.ForAll(
		func(n int, present, failed bool) bool {
			var r Result[option.Option[int], error]
			switch {
			case failed:
				r = Err[option.Option[int]](errors.New("boom"))
			case !present:
				r = Ok[option.Option[int], error](option.None[int]())
			default:
				r = Ok[option.Option[int], error](option.Some(n))
			}
			return TransposeOption(TransposeResult(r)).Equals(r)
		},
		gen.Int(), gen.Bool(), gen.Bool(),
	))

	properties.TestingRun(t)
}
