package unchecked

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplace(t *testing.T) {
	toB := func(e *errA) *errB { return &errB{msg: "was " + e.msg} }

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "direct match",
			err:  &errA{msg: "a"},
			want: "B: was a",
		},
		{
			name: "match in chain",
			err:  fmt.Errorf("outer: %w", &errA{msg: "inner"}),
			want: "B: was inner",
		},
		{
			name: "match inside unchecked wrapper",
			err:  &UncheckedError{cause: &errA{msg: "wrapped"}},
			want: "B: was wrapped",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Replace(tt.err, toB)
			require.EqualError(t, got, tt.want)
		})
	}
}

func TestReplace_NoMatch(t *testing.T) {
	err := stderrors.New("unrelated")
	got := Replace(err, func(e *errA) *errB { return &errB{} })

	require.Same(t, err, got)
}

func TestReplace_Nil(t *testing.T) {
	called := false
	got := Replace(nil, func(e *errA) *errB {
		called = true
		return &errB{}
	})

	require.NoError(t, got)
	require.False(t, called)
}
