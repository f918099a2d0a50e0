package unchecked

// Function adapts fn into a function without an error result.
//
// When fn returns an error, the adapted function panics with it: unchanged
// for run-time errors, otherwise wrapped in UncheckedError (or UnexpectedError
// for an undeclared error under Expect). Panics raised by fn propagate untouched.
//
// Example:
//
//	stat := unchecked.Function(os.Stat)
//	info := stat("go.mod") // panics with *UncheckedError if os.Stat fails
func Function[T, R any](fn func(T) (R, error), opts ...Option) func(T) R {
	if fn == nil {
		panic("unchecked: nil function")
	}
	c := newConfig(opts)
	return func(t T) R {
		r, err := fn(t)
		if err != nil {
			c.raise(err)
		}
		return r
	}
}

// Consumer adapts fn into a function without an error result.
// Failures are handled as in Function.
//
// Example:
//
//	remove := unchecked.Consumer(os.Remove, unchecked.Expect(unchecked.KindOf[*fs.PathError]()))
//	for _, p := range paths {
//	    remove(p)
//	}
func Consumer[T any](fn func(T) error, opts ...Option) func(T) {
	if fn == nil {
		panic("unchecked: nil consumer")
	}
	c := newConfig(opts)
	return func(t T) {
		if err := fn(t); err != nil {
			c.raise(err)
		}
	}
}

// Predicate adapts fn into a predicate without an error result, suitable for
// slices.IndexFunc, slices.DeleteFunc and similar.
// Failures are handled as in Function.
func Predicate[T any](fn func(T) (bool, error), opts ...Option) func(T) bool {
	if fn == nil {
		panic("unchecked: nil predicate")
	}
	c := newConfig(opts)
	return func(t T) bool {
		ok, err := fn(t)
		if err != nil {
			c.raise(err)
		}
		return ok
	}
}

// Supplier adapts fn into a supplier without an error result, suitable for
// sync.OnceValue and similar.
// Failures are handled as in Function.
func Supplier[R any](fn func() (R, error), opts ...Option) func() R {
	if fn == nil {
		panic("unchecked: nil supplier")
	}
	c := newConfig(opts)
	return func() R {
		r, err := fn()
		if err != nil {
			c.raise(err)
		}
		return r
	}
}
