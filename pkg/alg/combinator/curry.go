package combinator

// Curry converts a two-argument function into a chain of single-argument
// functions.
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Uncurry converts a chain of single-argument functions back into a
// two-argument function.
func Uncurry[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}

// Curry3 converts a three-argument function into a chain of single-argument
// functions.
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
}

// Uncurry3 converts a chain of single-argument functions back into a
// three-argument function.
func Uncurry3[A, B, C, D any](f func(A) func(B) func(C) D) func(A, B, C) D {
	return func(a A, b B, c C) D {
		return f(a)(b)(c)
	}
}

// Apply applies a function to a value.
func Apply[A, B any](f func(A) B, a A) B {
	return f(a)
}
