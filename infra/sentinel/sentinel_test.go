package sentinel

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

const errArenaFull = Error("arena full")

func TestError_Message(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  Error
		want string
	}{
		"simple": {err: Error("out of memory"), want: "out of memory"},
		"empty":  {err: Error(""), want: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestError_WrappedChain(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("insert node: %w", fmt.Errorf("allocate 48 bytes: %w", errArenaFull))
	assert.True(t, errors.Is(wrapped, errArenaFull))
	assert.False(t, errors.Is(wrapped, Error("something else")))
}
