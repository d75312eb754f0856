// Package memory provides the storage providers that containers draw
// their nodes from.
//
// A Provider hands out Blocks described by a Layout (object size and
// alignment) from some backing region and takes them back through
// Deallocate, which may be a no-op. Allocator[T] is the typed view of a
// provider; Rebind re-targets it to another object type while keeping
// the same region, which is how a container of T allocates its node
// structures rather than raw T.
//
// Heap is unbounded and stateless. Arena is a fixed-capacity bump region
// whose space is only reclaimed by Reset. Tracker decorates any provider
// with call accounting and failure injection.
//
// Nothing in this package is safe for concurrent use.
package memory
