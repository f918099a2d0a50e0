package unchecked

import (
	"context"
	"errors"
)

// Category indicates how an adapter treats an error returned by a wrapped function.
type Category string

const (
	// CategoryRuntime indicates an error that is never reclassified.
	// The adapter panics with it unchanged.
	// Examples: runtime.Error values, errors marked with MarkRuntime, and the
	// wrappers raised by this package.
	CategoryRuntime Category = "RUNTIME"

	// CategoryInterrupt indicates a cooperative interruption. The adapter marks
	// its Interrupter and then reclassifies the error like any checked error.
	CategoryInterrupt Category = "INTERRUPT"

	// CategoryChecked indicates any other error. It is eligible for wrapping.
	CategoryChecked Category = "CHECKED"
)

// ErrInterrupted reports a cooperative interruption outside of a context.
// Errors whose chain contains it classify as CategoryInterrupt, as do errors
// whose chain contains context.Canceled.
var ErrInterrupted = errors.New("interrupted")

// runtimeError is the method set shared by runtime.Error and this package's wrappers.
type runtimeError interface {
	error
	RuntimeError()
}

// Classify returns the category of err.
//
// Run-time detection looks at err itself, not its chain: wrapping a run-time
// error inside an ordinary error makes the result checked. Interruption
// detection walks the chain.
func Classify(err error) Category {
	if _, ok := err.(runtimeError); ok {
		return CategoryRuntime
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, ErrInterrupted) {
		return CategoryInterrupt
	}
	return CategoryChecked
}

// IsRuntime returns true if err passes through adapters unchanged.
func IsRuntime(err error) bool {
	return Classify(err) == CategoryRuntime
}

// IsInterrupt returns true if err is a cooperative interruption that is not
// also a run-time error.
func IsInterrupt(err error) bool {
	return Classify(err) == CategoryInterrupt
}

// markedError is an error opted out of reclassification by MarkRuntime.
type markedError struct {
	err error
}

func (e *markedError) Error() string { return e.err.Error() }
func (e *markedError) Unwrap() error { return e.err }
func (e *markedError) RuntimeError() {}

// MarkRuntime returns an error that wraps err and classifies as CategoryRuntime.
// Use it for precondition violations that should surface as-is through an
// adapted function. Returns nil if err is nil.
//
// Example:
//
//	parse := unchecked.Function(func(s string) (int, error) {
//	    if s == "" {
//	        return 0, unchecked.MarkRuntime(errEmptyInput)
//	    }
//	    return strconv.Atoi(s)
//	})
func MarkRuntime(err error) error {
	if err == nil {
		return nil
	}
	if IsRuntime(err) {
		return err
	}
	return &markedError{err: err}
}
