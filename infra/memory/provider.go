package memory

import (
	"fmt"
	"unsafe"

	"arenalist/infra/sentinel"
)

const (
	// ErrOutOfMemory is returned when a region cannot satisfy a request.
	ErrOutOfMemory = sentinel.Error("memory: out of memory")

	// ErrInjectedFailure is returned by a Tracker once its failure budget is spent.
	ErrInjectedFailure = sentinel.Error("memory: injected allocation failure")
)

// Layout is the size and alignment of a single object.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// LayoutOf reports the layout of T.
func LayoutOf[T any]() Layout {
	var zero T
	return Layout{Size: unsafe.Sizeof(zero), Align: unsafe.Alignof(zero)}
}

// Bytes is the storage needed for count contiguous objects.
func (l Layout) Bytes(count int) uintptr {
	return l.Size * uintptr(count)
}

func (l Layout) String() string {
	return fmt.Sprintf("%dB/%d", l.Size, l.Align)
}

// Block describes storage handed out by a Provider.
type Block struct {
	Offset uintptr
	Layout Layout
	Count  int
}

// Provider supplies storage for objects from a backing region.
//
// Allocate returns storage for count contiguous objects of layout l, or an
// error wrapping ErrOutOfMemory when the region cannot hold them.
// Deallocate returns a block; providers are free to ignore it.
// Equal reports whether other draws from the same region, i.e. whether
// storage from the two may be released through either.
type Provider interface {
	Allocate(l Layout, count int) (Block, error)
	Deallocate(b Block)
	Equal(other Provider) bool
}

// CopySelector is implemented by providers that choose a different
// provider for a container built as a copy of one that uses them.
type CopySelector interface {
	SelectOnCopy() Provider
}

// Propagator is implemented by providers that travel with the contents
// when one container is assigned from another.
type Propagator interface {
	PropagateOnCopyAssign() bool
}

// SelectOnCopy returns the provider a copy of a container using p should
// use. Without a CopySelector it is p itself.
func SelectOnCopy(p Provider) Provider {
	if s, ok := p.(CopySelector); ok {
		return s.SelectOnCopy()
	}
	return p
}

// PropagatesOnCopyAssign reports whether p is adopted by the target of a
// copy assignment. Defaults to false.
func PropagatesOnCopyAssign(p Provider) bool {
	if pr, ok := p.(Propagator); ok {
		return pr.PropagateOnCopyAssign()
	}
	return false
}

// Equal reports whether a and b share a region. Nil providers are equal
// only to each other.
func Equal(a, b Provider) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
