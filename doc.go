// Package unchecked adapts error-returning functions into functions without an
// error result.
//
// Many APIs accept plain callbacks: slices.SortFunc, slices.IndexFunc,
// sync.OnceValue, iterator helpers. A callback that can fail does not fit
// them. This package converts such a callback into one that panics with a
// wrapper error instead of returning it, while keeping the original error
// reachable through errors.Is, errors.As and errors.Unwrap.
//
// # Features
//
//   - Adapters for the four callback shapes: Function, Consumer, Predicate, Supplier
//   - Unconditional policy: every failure becomes an UncheckedError
//   - Classified policy (Expect): declared kinds become UncheckedError, anything else
//     becomes UnexpectedError
//   - Run-time errors pass through unchanged
//   - Cooperative interruption forwarding through an Interrupter
//   - RequireNonNil for nil checks with a caller-chosen error type
//   - Replace for translating an error in a chain into another type
//
// # Quick Start
//
// Unconditional adaptation:
//
//	load := unchecked.Function(func(path string) ([]byte, error) {
//	    return os.ReadFile(path)
//	})
//	data := load("config.yaml") // panics with *UncheckedError on failure
//
// Classified adaptation:
//
//	load := unchecked.Function(os.ReadFile,
//	    unchecked.Expect(unchecked.KindOf[*fs.PathError]()),
//	)
//
// A failure matching a declared kind panics with *UncheckedError. Any other
// failure panics with *UnexpectedError, whose message is "Unexpected exception":
// the callback returned something it was not declared to return.
//
// Recovering the original error:
//
//	defer func() {
//	    if r := recover(); r != nil {
//	        var wrapped *unchecked.UncheckedError
//	        if err, ok := r.(error); ok && errors.As(err, &wrapped) {
//	            retErr = wrapped.Cause()
//	            return
//	        }
//	        panic(r)
//	    }
//	}()
//
// # Error Categories
//
// Every error returned by a wrapped callback falls in one category:
//
//   - Runtime: the error has a RuntimeError() method (runtime.Error, MarkRuntime,
//     and this package's own wrappers). Panicked with unchanged.
//   - Interrupt: the chain contains context.Canceled or ErrInterrupted. The
//     adapter marks its Interrupter, then wraps like a checked error.
//   - Checked: everything else. Wrapped according to the adapter's policy.
//
// Runtime detection wins over interruption handling and classification.
// Panics raised by the callback itself are never recovered.
//
// # Interruption
//
// Wrapping erases the type of an interruption error. So that a surrounding
// loop still notices the cancellation, adapters mark an Interrupter before
// panicking. By default this is a process-wide flag:
//
//	if unchecked.Interrupted() {
//	    unchecked.ClearInterrupted()
//	    return ctx.Err()
//	}
//
// WithInterrupter redirects the marker, for example to a Flag owned by a
// worker or to CancelInterrupter, which cancels a context.
//
// # Nil Checks
//
//	client, err := unchecked.RequireNonNilMessage(opts.Client, "client is required", newConfigError)
//
// The error type is whatever the factory returns; RequireNonNil never builds
// an error of its own.
//
// # Logging
//
// Adapters log nothing by default. WithLogger attaches a *slog.Logger that
// receives one debug record per reclassified failure.
package unchecked
