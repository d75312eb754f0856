package list

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arenalist/infra/memory"
)

func threeInts(t *testing.T) *List[int] {
	t.Helper()
	l, err := FromSlice([]int{1, 2, 3}, memory.Allocator[int]{})
	require.NoError(t, err)
	return l
}

func TestIterator_Arithmetic(t *testing.T) {
	l := threeInts(t)

	assert.Equal(t, 3, l.End().Prev().Value())
	assert.True(t, l.Begin().Next() == l.End().Prev().Prev())
	assert.Equal(t, 2, l.Begin().Next().Value())

	it := l.Begin()
	for i := 0; i < 3; i++ {
		it = it.Prev().Next()
	}
	assert.True(t, it == l.Begin())

	// The ring wraps through the sentinel in both directions.
	assert.True(t, l.Begin().Prev() == l.End())
	assert.True(t, l.End().Next() == l.Begin())
	assert.True(t, l.Begin().Next().Next().Next() == l.End())
}

func TestIterator_Empty(t *testing.T) {
	l := New[int]()
	assert.True(t, l.Begin() == l.End())
	assert.True(t, l.End().Prev() == l.End())
	assert.True(t, l.End().Next() == l.End())
	assert.True(t, l.RBegin() == l.REnd())
}

func TestIterator_MutateInPlace(t *testing.T) {
	l := threeInts(t)

	l.Begin().Set(10)
	*l.End().Prev().Ptr() = 30
	assert.Equal(t, []int{10, 2, 30}, l.Values())
}

func TestConstIterator(t *testing.T) {
	l := threeInts(t)

	var c ConstIterator[int] = l.Begin().Next().Const()
	assert.Equal(t, 2, c.Value())
	assert.True(t, c.Equal(l.Begin().Next()))
	assert.True(t, l.Begin().Next().Equal(c))
	assert.False(t, c.Equal(l.Begin()))
	assert.True(t, l.CBegin().Prev() == l.CEnd())

	var got []int
	for it := l.CBegin(); it != l.CEnd(); it = it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestConstIterator_AsPosition(t *testing.T) {
	l := threeInts(t)

	ins, err := l.Insert(l.CEnd().Prev(), 9)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 9, 3}, l.Values())

	next := l.Erase(ins.Const())
	assert.Equal(t, 3, next.Value())
}

func TestReverseIterator(t *testing.T) {
	l := threeInts(t)

	var got []int
	for it := l.RBegin(); it != l.REnd(); it = it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{3, 2, 1}, got)

	assert.True(t, l.RBegin().Base() == l.End())
	assert.True(t, l.REnd().Base() == l.Begin())
	assert.Equal(t, 2, l.RBegin().Next().Value())
	assert.True(t, l.RBegin().Next().Prev() == l.RBegin())

	l.RBegin().Set(30)
	assert.Equal(t, 30, l.CRBegin().Value())
	assert.True(t, l.CRBegin().Base() == l.CEnd())

	var cgot []int
	for it := l.CRBegin(); it != l.CREnd(); it = it.Next() {
		cgot = append(cgot, it.Value())
	}
	assert.Equal(t, []int{30, 2, 1}, cgot)
	assert.Equal(t, 1, l.CREnd().Prev().Value())
}

func TestSequences(t *testing.T) {
	l := threeInts(t)

	assert.Equal(t, []int{1, 2, 3}, slices.Collect(l.All()))
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(l.Backward()))

	var first int
	for v := range l.All() {
		first = v
		break
	}
	assert.Equal(t, 1, first)
}
