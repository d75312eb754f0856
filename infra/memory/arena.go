package memory

import (
	"fmt"

	"arenalist/infra/logging"
)

// Arena is a fixed-capacity bump region. Space is handed out in address
// order with each request aligned to its layout, and is only reclaimed
// by Reset.
type Arena struct {
	capacity uintptr
	pos      uintptr
	blocks   int
}

// NewArena creates an arena of capacity bytes.
// Panics if capacity < 0.
func NewArena(capacity int) *Arena {
	if capacity < 0 {
		panic(fmt.Sprintf("memory: arena capacity must not be negative, got %d", capacity))
	}
	return &Arena{capacity: uintptr(capacity)}
}

// Cap is the total capacity in bytes.
func (a *Arena) Cap() int { return int(a.capacity) }

// Used is the offset of the next free byte, padding included.
func (a *Arena) Used() int { return int(a.pos) }

// Free is the number of bytes past the bump pointer.
func (a *Arena) Free() int { return int(a.capacity - a.pos) }

// Blocks is the number of successful allocations since the last Reset.
func (a *Arena) Blocks() int { return a.blocks }

// Reset discards every allocation. Blocks handed out earlier must no
// longer be in use.
func (a *Arena) Reset() {
	a.pos = 0
	a.blocks = 0
}

func (a *Arena) allocate(l Layout, count int) (Block, error) {
	if count < 0 {
		return Block{}, fmt.Errorf("allocate %d objects of %s: %w", count, l, ErrOutOfMemory)
	}
	align := l.Align
	if align == 0 {
		align = 1
	}
	start := (a.pos + align - 1) &^ (align - 1)
	if start < a.pos || start > a.capacity {
		return Block{}, a.exhausted(l, count)
	}
	if l.Size != 0 && uintptr(count) > (a.capacity-start)/l.Size {
		return Block{}, a.exhausted(l, count)
	}
	a.pos = start + l.Bytes(count)
	a.blocks++
	return Block{Offset: start, Layout: l, Count: count}, nil
}

func (a *Arena) exhausted(l Layout, count int) error {
	logging.Logger().Debug("arena exhausted",
		"layout", l.String(),
		"count", count,
		"used", a.pos,
		"capacity", a.capacity,
	)
	return fmt.Errorf("allocate %d objects of %s with %d/%d bytes used: %w",
		count, l, a.pos, a.capacity, ErrOutOfMemory)
}

// ArenaOption configures an ArenaProvider.
type ArenaOption func(*ArenaProvider)

// WithPropagation makes containers adopt the provider of the source on
// copy assignment.
func WithPropagation() ArenaOption {
	return func(p *ArenaProvider) {
		p.propagate = true
	}
}

// ArenaProvider is a Provider handle onto an Arena. Handles are cheap
// values; two handles are equal iff they name the same arena.
type ArenaProvider struct {
	arena     *Arena
	propagate bool
}

var (
	_ Provider   = ArenaProvider{}
	_ Propagator = ArenaProvider{}
)

// NewArenaProvider returns a handle onto a.
// Panics if a is nil.
func NewArenaProvider(a *Arena, opts ...ArenaOption) ArenaProvider {
	if a == nil {
		panic("memory: arena must not be nil")
	}
	p := ArenaProvider{arena: a}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Arena returns the backing arena.
func (p ArenaProvider) Arena() *Arena { return p.arena }

func (p ArenaProvider) Allocate(l Layout, count int) (Block, error) {
	return p.arena.allocate(l, count)
}

// Deallocate is a no-op. Space returns to the arena only on Reset.
func (p ArenaProvider) Deallocate(Block) {}

func (p ArenaProvider) Equal(other Provider) bool {
	o, ok := other.(ArenaProvider)
	return ok && o.arena == p.arena
}

func (p ArenaProvider) PropagateOnCopyAssign() bool { return p.propagate }
