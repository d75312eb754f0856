package list

import (
	"fmt"
	"iter"

	"arenalist/infra/memory"
)

// List is a doubly linked sequence of T. The zero value is an empty list
// on the heap provider.
type List[T any] struct {
	root  node[T]
	len   int
	alloc memory.Allocator[T]
}

// New returns an empty list on the heap provider.
func New[T any]() *List[T] {
	return new(List[T]).init()
}

// NewWithAllocator returns an empty list bound to a.
func NewWithAllocator[T any](a memory.Allocator[T]) *List[T] {
	l := New[T]()
	l.alloc = a
	return l
}

// NewN returns a list of count default values allocated from a. If any
// element cannot be built, the ones built so far are released and no list
// is returned.
// Panics if count < 0.
func NewN[T any](count int, a memory.Allocator[T]) (*List[T], error) {
	requireCount(count)
	l := NewWithAllocator(a)
	var tx txn
	for i := 0; i < count; i++ {
		if err := l.pushBackTx(&tx, defaultValue[T]); err != nil {
			tx.rollback("NewN", err)
			return nil, fmt.Errorf("list: build element %d of %d: %w", i+1, count, err)
		}
	}
	return l, nil
}

// NewFilled returns a list of count copies of value allocated from a,
// with the same rollback as NewN.
// Panics if count < 0.
func NewFilled[T any](count int, value T, a memory.Allocator[T]) (*List[T], error) {
	requireCount(count)
	l := NewWithAllocator(a)
	var tx txn
	for i := 0; i < count; i++ {
		if err := l.pushBackTx(&tx, copier(value)); err != nil {
			tx.rollback("NewFilled", err)
			return nil, fmt.Errorf("list: copy element %d of %d: %w", i+1, count, err)
		}
	}
	return l, nil
}

// FromSlice returns a list holding copies of vs in order, with the same
// rollback as NewN.
func FromSlice[T any](vs []T, a memory.Allocator[T]) (*List[T], error) {
	l := NewWithAllocator(a)
	var tx txn
	for i, v := range vs {
		if err := l.pushBackTx(&tx, copier(v)); err != nil {
			tx.rollback("FromSlice", err)
			return nil, fmt.Errorf("list: copy element %d of %d: %w", i+1, len(vs), err)
		}
	}
	return l, nil
}

func requireCount(count int) {
	if count < 0 {
		panic(fmt.Sprintf("list: count must not be negative, got %d", count))
	}
}

func (l *List[T]) init() *List[T] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
	return l
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.init()
	}
}

// Clone returns a copy of l. The copy's allocator is chosen by the
// provider's copy policy (memory.SelectOnCopy). On failure every element
// already copied is released and no list is returned.
func (l *List[T]) Clone() (*List[T], error) {
	l.lazyInit()
	c := NewWithAllocator(l.alloc.SelectOnCopy())
	var tx txn
	i := 0
	for n := l.root.next; n != &l.root; n = n.next {
		i++
		if err := c.pushBackTx(&tx, copier(n.value)); err != nil {
			tx.rollback("Clone", err)
			return nil, fmt.Errorf("list: clone element %d of %d: %w", i, l.len, err)
		}
	}
	return c, nil
}

// Assign replaces the contents of l with copies of src's elements and
// returns l.
//
// When src's provider propagates on copy assignment and differs from l's,
// the copies are allocated from src's provider and l adopts it; the
// elements l held before are still released through its previous
// provider. If any copy fails, everything appended by this call is
// released, l keeps its previous provider and contents, and the error is
// returned.
func (l *List[T]) Assign(src *List[T]) (*List[T], error) {
	l.lazyInit()
	src.lazyInit()
	if l == src {
		return l, nil
	}

	prevLen, prevAlloc := l.len, l.alloc
	if src.alloc.PropagateOnCopyAssign() && !l.alloc.Equal(src.alloc) {
		l.alloc = src.alloc
	}
	newAlloc := l.alloc

	var tx txn
	tx.push(func() { l.alloc = prevAlloc })
	i := 0
	for n := src.root.next; n != &src.root; n = n.next {
		i++
		if err := l.pushBackTx(&tx, copier(n.value)); err != nil {
			tx.rollback("Assign", err)
			return nil, fmt.Errorf("list: assign element %d of %d onto %d: %w", i, src.len, prevLen, err)
		}
	}

	// The previous elements go back to the provider they came from.
	l.alloc = prevAlloc
	for l.len > src.len {
		l.PopFront()
	}
	l.alloc = newAlloc
	return l, nil
}

// Clear removes every element from the back, releasing each node to the
// provider. The list stays usable.
func (l *List[T]) Clear() {
	for l.len > 0 {
		l.PopBack()
	}
}

// Len returns the number of elements in O(1).
func (l *List[T]) Len() int { return l.len }

// Allocator returns the allocator new nodes are drawn from.
func (l *List[T]) Allocator() memory.Allocator[T] { return l.alloc }

// PushBack appends a copy of v.
func (l *List[T]) PushBack(v T) error {
	l.lazyInit()
	_, err := l.Insert(l.End(), v)
	return err
}

// PushFront prepends a copy of v.
func (l *List[T]) PushFront(v T) error {
	l.lazyInit()
	_, err := l.Insert(l.Begin(), v)
	return err
}

// PopBack removes the last element and returns it. It reports false on an
// empty list.
func (l *List[T]) PopBack() (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	last := l.End().Prev()
	v := last.Value()
	l.Erase(last)
	return v, true
}

// PopFront removes the first element and returns it. It reports false on
// an empty list.
func (l *List[T]) PopFront() (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	first := l.Begin()
	v := first.Value()
	l.Erase(first)
	return v, true
}

// Front returns the first element.
func (l *List[T]) Front() (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	return l.root.next.value, true
}

// Back returns the last element.
func (l *List[T]) Back() (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	return l.root.prev.value, true
}

// Insert links a copy of v before pos and returns its position. If the
// node cannot be allocated or the copy fails, the list is unchanged and
// no storage is held.
func (l *List[T]) Insert(pos Position[T], v T) (Iterator[T], error) {
	n, err := l.insert(pos.node(), copier(v))
	if err != nil {
		return Iterator[T]{}, err
	}
	return Iterator[T]{n: n}, nil
}

// Erase unlinks the element at pos, releases its node and returns the
// position that followed it. pos must not be End.
func (l *List[T]) Erase(pos Position[T]) Iterator[T] {
	return Iterator[T]{n: l.erase(pos.node())}
}

func (l *List[T]) insert(at *node[T], construct func() (T, error)) (*node[T], error) {
	na := memory.Rebind[node[T]](l.alloc)
	n, blk, err := na.New()
	if err != nil {
		return nil, fmt.Errorf("list: allocate node: %w", err)
	}
	v, err := construct()
	if err != nil {
		na.Delete(blk)
		return nil, fmt.Errorf("list: construct element: %w", err)
	}
	n.value = v
	n.blk = blk
	n.prev = at.prev
	n.next = at
	at.prev.next = n
	at.prev = n
	l.len++
	return n, nil
}

func (l *List[T]) erase(n *node[T]) *node[T] {
	n.prev.next = n.next
	n.next.prev = n.prev
	next, blk := n.next, n.blk
	*n = node[T]{}
	memory.Rebind[node[T]](l.alloc).Delete(blk)
	l.len--
	return next
}

func (l *List[T]) pushBackTx(tx *txn, construct func() (T, error)) error {
	l.lazyInit()
	if _, err := l.insert(&l.root, construct); err != nil {
		return err
	}
	tx.push(func() { l.PopBack() })
	return nil
}

// Begin is the first element, or End when the list is empty.
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{n: l.root.next}
}

// End is the sentinel position after the last element.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{n: &l.root}
}

func (l *List[T]) CBegin() ConstIterator[T] { return l.Begin().Const() }

func (l *List[T]) CEnd() ConstIterator[T] { return l.End().Const() }

// RBegin is the last element, or REnd when the list is empty.
func (l *List[T]) RBegin() ReverseIterator[T] {
	l.lazyInit()
	return ReverseIterator[T]{n: l.root.prev}
}

// REnd is the sentinel seen from the back.
func (l *List[T]) REnd() ReverseIterator[T] {
	l.lazyInit()
	return ReverseIterator[T]{n: &l.root}
}

func (l *List[T]) CRBegin() ConstReverseIterator[T] { return l.RBegin().Const() }

func (l *List[T]) CREnd() ConstReverseIterator[T] { return l.REnd().Const() }

// All yields the elements front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := l.CBegin(); it != l.CEnd(); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward yields the elements back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := l.CRBegin(); it != l.CREnd(); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Values returns the elements front to back in a new slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.len)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

func (l *List[T]) String() string {
	return fmt.Sprintf("%v", l.Values())
}
