package unchecked

import (
	"context"
	"sync/atomic"
)

// Interrupter receives the interruption marker when an adapter observes an
// interruption error. The marker survives the wrapping that erases the
// error's type, so a surrounding loop can still notice the cancellation.
type Interrupter interface {
	MarkInterrupted()
}

// InterrupterFunc adapts an ordinary function to the Interrupter interface.
type InterrupterFunc func()

// MarkInterrupted calls f.
func (f InterrupterFunc) MarkInterrupted() {
	f()
}

// Flag is a cooperative interruption flag safe for concurrent use.
// The zero value is an unset flag.
type Flag struct {
	set atomic.Bool
}

// MarkInterrupted sets the flag.
func (f *Flag) MarkInterrupted() {
	f.set.Store(true)
}

// Interrupted reports whether the flag is set.
func (f *Flag) Interrupted() bool {
	return f.set.Load()
}

// Clear resets the flag and reports whether it was set.
func (f *Flag) Clear() bool {
	return f.set.Swap(false)
}

// processFlag is marked by adapters that have no Interrupter of their own.
var processFlag Flag

// Interrupted reports whether any adapter without its own Interrupter has
// observed an interruption since the last ClearInterrupted.
func Interrupted() bool {
	return processFlag.Interrupted()
}

// ClearInterrupted resets the process-wide flag and reports whether it was set.
// Adapters only ever set the flag; clearing is up to the caller.
func ClearInterrupted() bool {
	return processFlag.Clear()
}

// CancelInterrupter returns an Interrupter that cancels a context with
// ErrInterrupted as its cause.
//
// Example:
//
//	ctx, cancel := context.WithCancelCause(parent)
//	defer cancel(nil)
//	visit := unchecked.Consumer(process, unchecked.WithInterrupter(unchecked.CancelInterrupter(cancel)))
func CancelInterrupter(cancel context.CancelCauseFunc) Interrupter {
	return InterrupterFunc(func() {
		cancel(ErrInterrupted)
	})
}
