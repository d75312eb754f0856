package list

// Position is a place in a list: an element or End. Both iterator
// variants are positions.
type Position[T any] interface {
	node() *node[T]
}

// Iterator is a mutable position. It never owns the node it refers to.
type Iterator[T any] struct {
	n *node[T]
}

func (it Iterator[T]) node() *node[T] { return it.n }

// Next moves to the following position; Next of the last element is End.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{n: it.n.next} }

// Prev moves to the preceding position; Prev of End is the last element.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{n: it.n.prev} }

// Value returns the element. Undefined at End.
func (it Iterator[T]) Value() T { return it.n.value }

// Ptr returns the address of the element in place. Undefined at End.
func (it Iterator[T]) Ptr() *T { return &it.n.value }

// Set overwrites the element in place. Undefined at End.
func (it Iterator[T]) Set(v T) { it.n.value = v }

// Const returns the read-only view of the same position.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{n: it.n} }

// Equal reports whether it and p are the same position.
func (it Iterator[T]) Equal(p Position[T]) bool { return it.n == p.node() }

// ConstIterator is a read-only position. There is no conversion back to
// Iterator.
type ConstIterator[T any] struct {
	n *node[T]
}

func (it ConstIterator[T]) node() *node[T] { return it.n }

func (it ConstIterator[T]) Next() ConstIterator[T] { return ConstIterator[T]{n: it.n.next} }

func (it ConstIterator[T]) Prev() ConstIterator[T] { return ConstIterator[T]{n: it.n.prev} }

// Value returns the element. Undefined at End.
func (it ConstIterator[T]) Value() T { return it.n.value }

func (it ConstIterator[T]) Equal(p Position[T]) bool { return it.n == p.node() }

// ReverseIterator walks a list from the back. It refers to the element it
// yields; REnd is the sentinel.
type ReverseIterator[T any] struct {
	n *node[T]
}

func (it ReverseIterator[T]) Next() ReverseIterator[T] { return ReverseIterator[T]{n: it.n.prev} }

func (it ReverseIterator[T]) Prev() ReverseIterator[T] { return ReverseIterator[T]{n: it.n.next} }

func (it ReverseIterator[T]) Value() T { return it.n.value }

func (it ReverseIterator[T]) Ptr() *T { return &it.n.value }

func (it ReverseIterator[T]) Set(v T) { it.n.value = v }

// Base returns the forward iterator one past it in forward order, so
// RBegin().Base() is End and REnd().Base() is Begin.
func (it ReverseIterator[T]) Base() Iterator[T] { return Iterator[T]{n: it.n.next} }

func (it ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{n: it.n}
}

// ConstReverseIterator is the read-only ReverseIterator.
type ConstReverseIterator[T any] struct {
	n *node[T]
}

func (it ConstReverseIterator[T]) Next() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{n: it.n.prev}
}

func (it ConstReverseIterator[T]) Prev() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{n: it.n.next}
}

func (it ConstReverseIterator[T]) Value() T { return it.n.value }

func (it ConstReverseIterator[T]) Base() ConstIterator[T] { return ConstIterator[T]{n: it.n.next} }
