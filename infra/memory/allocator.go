package memory

// Allocator is the typed view of a Provider. The zero value uses Heap.
type Allocator[T any] struct {
	p Provider
}

// NewAllocator binds p to objects of type T.
func NewAllocator[T any](p Provider) Allocator[T] {
	return Allocator[T]{p: p}
}

// Rebind returns an allocator for U that draws from the same provider as a.
func Rebind[U, T any](a Allocator[T]) Allocator[U] {
	return Allocator[U]{p: a.p}
}

// Provider returns the underlying provider, Heap for the zero value.
func (a Allocator[T]) Provider() Provider {
	if a.p == nil {
		return Heap{}
	}
	return a.p
}

// Layout is the per-object layout requested by this allocator.
func (a Allocator[T]) Layout() Layout {
	return LayoutOf[T]()
}

// New reserves storage for one T and returns a zeroed object with the
// block that must be handed back to Delete.
func (a Allocator[T]) New() (*T, Block, error) {
	b, err := a.Provider().Allocate(LayoutOf[T](), 1)
	if err != nil {
		return nil, Block{}, err
	}
	return new(T), b, nil
}

// Delete hands b back to the provider.
func (a Allocator[T]) Delete(b Block) {
	a.Provider().Deallocate(b)
}

// Equal reports whether a and o draw from the same region. Allocators of
// different element types compare through Rebind.
func (a Allocator[T]) Equal(o Allocator[T]) bool {
	return a.Provider().Equal(o.Provider())
}

// SelectOnCopy applies the provider's copy-construction policy.
func (a Allocator[T]) SelectOnCopy() Allocator[T] {
	return Allocator[T]{p: SelectOnCopy(a.Provider())}
}

// PropagateOnCopyAssign reports the provider's assignment policy.
func (a Allocator[T]) PropagateOnCopyAssign() bool {
	return PropagatesOnCopyAssign(a.Provider())
}
