package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_BumpsWithAlignment(t *testing.T) {
	a := NewArena(64)
	p := NewArenaProvider(a)

	b1, err := p.Allocate(Layout{Size: 1, Align: 1}, 3)
	require.NoError(t, err)
	assert.Equal(t, uintptr(0), b1.Offset)
	assert.Equal(t, 3, a.Used())

	b2, err := p.Allocate(Layout{Size: 8, Align: 8}, 2)
	require.NoError(t, err)
	assert.Equal(t, uintptr(8), b2.Offset, "second block must start on an 8-byte boundary")
	assert.Equal(t, 24, a.Used())
	assert.Equal(t, 40, a.Free())
	assert.Equal(t, 2, a.Blocks())
}

func TestArena_Exhaustion(t *testing.T) {
	a := NewArena(16)
	p := NewArenaProvider(a)

	_, err := p.Allocate(Layout{Size: 8, Align: 8}, 2)
	require.NoError(t, err)

	_, err = p.Allocate(Layout{Size: 1, Align: 1}, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfMemory))
	assert.Equal(t, 16, a.Used(), "a failed request must not move the bump pointer")
}

func TestArena_PaddingCountsAgainstCapacity(t *testing.T) {
	a := NewArena(16)
	p := NewArenaProvider(a)

	_, err := p.Allocate(Layout{Size: 1, Align: 1}, 1)
	require.NoError(t, err)

	// 7 bytes of padding leave room for exactly one 8-byte object.
	_, err = p.Allocate(Layout{Size: 8, Align: 8}, 2)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	_, err = p.Allocate(Layout{Size: 8, Align: 8}, 1)
	assert.NoError(t, err)
}

func TestArena_DeallocateDoesNotReclaim(t *testing.T) {
	a := NewArena(8)
	p := NewArenaProvider(a)

	b, err := p.Allocate(Layout{Size: 8, Align: 8}, 1)
	require.NoError(t, err)
	p.Deallocate(b)

	_, err = p.Allocate(Layout{Size: 8, Align: 8}, 1)
	assert.ErrorIs(t, err, ErrOutOfMemory)

	a.Reset()
	_, err = p.Allocate(Layout{Size: 8, Align: 8}, 1)
	assert.NoError(t, err)
}

func TestArena_ZeroSizedObjects(t *testing.T) {
	a := NewArena(0)
	_, err := NewArenaProvider(a).Allocate(LayoutOf[struct{}](), 100)
	assert.NoError(t, err)
}

func TestArenaProvider_Equal(t *testing.T) {
	a1, a2 := NewArena(32), NewArena(32)

	tests := map[string]struct {
		a, b Provider
		want bool
	}{
		"same arena":             {a: NewArenaProvider(a1), b: NewArenaProvider(a1), want: true},
		"same arena, propagated": {a: NewArenaProvider(a1), b: NewArenaProvider(a1, WithPropagation()), want: true},
		"different arenas":       {a: NewArenaProvider(a1), b: NewArenaProvider(a2), want: false},
		"arena vs heap":          {a: NewArenaProvider(a1), b: Heap{}, want: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Equal(tc.a, tc.b))
			assert.Equal(t, tc.want, Equal(tc.b, tc.a))
		})
	}
}

func TestNewArena_PanicsOnNegativeCapacity(t *testing.T) {
	assert.Panics(t, func() { NewArena(-1) })
	assert.Panics(t, func() { NewArenaProvider(nil) })
}

func TestArenaProvider_Propagation(t *testing.T) {
	a := NewArena(8)
	assert.False(t, PropagatesOnCopyAssign(NewArenaProvider(a)))
	assert.True(t, PropagatesOnCopyAssign(NewArenaProvider(a, WithPropagation())))
	assert.False(t, PropagatesOnCopyAssign(Heap{}))
}
