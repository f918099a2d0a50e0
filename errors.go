package unchecked

import (
	"errors"
	"fmt"
)

// UncheckedError is raised by an adapted function when the wrapped function
// returned an error that is eligible for reclassification.
//
// It carries the original error as its cause, unmodified, so callers that
// recover the panic can inspect it with errors.Is and errors.As.
type UncheckedError struct {
	cause error
}

// Error returns the string representation of the error.
// Format: "[UNCHECKED] cause".
func (e *UncheckedError) Error() string {
	return fmt.Sprintf("[%s] %v", CodeUnchecked, e.cause)
}

// Code returns CodeUnchecked.
func (e *UncheckedError) Code() Code {
	return CodeUnchecked
}

// Cause returns the original error.
func (e *UncheckedError) Cause() error {
	return e.cause
}

// Unwrap returns the original error for standard library compatibility.
func (e *UncheckedError) Unwrap() error {
	return e.cause
}

// RuntimeError marks UncheckedError as a run-time failure, so that nested
// adapters pass it through instead of wrapping it again.
func (e *UncheckedError) RuntimeError() {}

// UnexpectedError is raised by a classified adapter when the wrapped function
// returned an error that matches none of its declared kinds. It signals a
// contract violation by the wrapped function.
type UnexpectedError struct {
	cause error
}

// Error returns the string representation of the error.
// Format: "[UNEXPECTED] Unexpected exception: cause".
func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", CodeUnexpected, UnexpectedMessage, e.cause)
}

// Code returns CodeUnexpected.
func (e *UnexpectedError) Code() Code {
	return CodeUnexpected
}

// Message returns UnexpectedMessage.
func (e *UnexpectedError) Message() string {
	return UnexpectedMessage
}

// Cause returns the original error.
func (e *UnexpectedError) Cause() error {
	return e.cause
}

// Unwrap returns the original error for standard library compatibility.
func (e *UnexpectedError) Unwrap() error {
	return e.cause
}

// RuntimeError marks UnexpectedError as a run-time failure.
func (e *UnexpectedError) RuntimeError() {}

// GetCode extracts the Code of the outermost wrapper in err's chain.
// Returns false if err is nil or contains no wrapper raised by this package.
//
// Example:
//
//	defer func() {
//	    if r := recover(); r != nil {
//	        err, _ := r.(error)
//	        if code, ok := unchecked.GetCode(err); ok && code == unchecked.CodeUnexpected {
//	            // The callback broke its contract
//	        }
//	    }
//	}()
func GetCode(err error) (Code, bool) {
	if err == nil {
		return "", false
	}

	var coded interface{ Code() Code }
	if errors.As(err, &coded) {
		return coded.Code(), true
	}

	return "", false
}
