package unchecked

import (
	"runtime"
)

// errA and errB stand in for two unrelated declared error kinds.
type errA struct{ msg string }

func (e *errA) Error() string { return "A: " + e.msg }

type errB struct{ msg string }

func (e *errB) Error() string { return "B: " + e.msg }

// fakeRuntime is an application error that opts out of reclassification.
type fakeRuntime struct{}

func (fakeRuntime) Error() string { return "fake runtime" }
func (fakeRuntime) RuntimeError() {}

// capture runs f and returns whatever it panicked with.
func capture(f func()) (recovered any) {
	defer func() {
		recovered = recover()
	}()
	f()
	return nil
}

// indexRuntimeError returns a genuine runtime.Error from an out of range index.
func indexRuntimeError() (err runtime.Error) {
	defer func() {
		err = recover().(runtime.Error)
	}()
	var s []int
	i := 1
	_ = s[i]
	return nil
}
