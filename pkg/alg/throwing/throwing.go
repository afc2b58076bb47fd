package throwing

// Supplier produces a value or fails with an E.
type Supplier[V any, E error] func() (V, E)

// Func maps a value to another or fails with an E.
type Func[T, V any, E error] func(T) (V, E)

// Consumer accepts a value and may fail with an E.
type Consumer[T any, E error] func(T) E

// Runnable performs an operation with no result and may fail with an E.
type Runnable[E error] func() E
