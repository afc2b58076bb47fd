package combinator

// Id returns its argument.
func Id[A any](a A) A {
	return a
}

// Const returns the first argument and discards the second.
func Const[A, B any](a A, _ B) A {
	return a
}

// Constant returns a function that ignores its argument and returns a.
func Constant[A, B any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// Noop discards its argument.
func Noop[A any](A) {}

// Nothing does nothing to nothing.
func Nothing() {}

// Compose applies ab first, then bc to its result.
func Compose[A, B, C any](ab func(A) B, bc func(B) C) func(A) C {
	return func(a A) C {
		return bc(ab(a))
	}
}

// Flip reverses the parameters of a two-argument function.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}

// Toss panics with the given error. The return type is free so a call can
// stand in any expression position; it never actually returns.
func Toss[A any](err error) A {
	panic(err)
}
