package memory

import (
	"fmt"

	"arenalist/infra/logging"
)

// Stats is a Tracker's accounting.
type Stats struct {
	Allocations   int
	Deallocations int
	Failures      int
	Outstanding   int
	Bytes         uintptr
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithFailAfter lets n allocations succeed and fails every later one.
// Panics if n < 0.
func WithFailAfter(n int) TrackerOption {
	if n < 0 {
		panic(fmt.Sprintf("memory: fail-after must not be negative, got %d", n))
	}
	return func(t *Tracker) {
		t.budget = n
	}
}

// Tracker decorates a provider with call accounting and optional failure
// injection. A Tracker is its own region: it equals only itself.
type Tracker struct {
	inner  Provider
	budget int // allocations left before injected failures, -1 when disarmed
	stats  Stats
}

var (
	_ Provider     = (*Tracker)(nil)
	_ Propagator   = (*Tracker)(nil)
	_ CopySelector = (*Tracker)(nil)
)

// NewTracker wraps inner; a nil inner means Heap.
func NewTracker(inner Provider, opts ...TrackerOption) *Tracker {
	if inner == nil {
		inner = Heap{}
	}
	t := &Tracker{inner: inner, budget: -1}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// FailAfter re-arms failure injection: n more allocations succeed, the
// rest fail. A negative n disarms it.
func (t *Tracker) FailAfter(n int) {
	if n < 0 {
		n = -1
	}
	t.budget = n
}

// Stats returns a copy of the accounting.
func (t *Tracker) Stats() Stats { return t.stats }

// Outstanding is the number of blocks allocated and not yet released.
func (t *Tracker) Outstanding() int { return t.stats.Outstanding }

// Inner returns the decorated provider.
func (t *Tracker) Inner() Provider { return t.inner }

func (t *Tracker) Allocate(l Layout, count int) (Block, error) {
	if t.budget == 0 {
		t.stats.Failures++
		logging.Logger().Debug("injected allocation failure", "layout", l.String(), "count", count)
		return Block{}, fmt.Errorf("allocate %d objects of %s: %w", count, l, ErrInjectedFailure)
	}
	b, err := t.inner.Allocate(l, count)
	if err != nil {
		t.stats.Failures++
		return Block{}, err
	}
	if t.budget > 0 {
		t.budget--
	}
	t.stats.Allocations++
	t.stats.Outstanding++
	t.stats.Bytes += l.Bytes(count)
	return b, nil
}

func (t *Tracker) Deallocate(b Block) {
	t.stats.Deallocations++
	t.stats.Outstanding--
	t.stats.Bytes -= b.Layout.Bytes(b.Count)
	t.inner.Deallocate(b)
}

func (t *Tracker) Equal(other Provider) bool {
	o, ok := other.(*Tracker)
	return ok && o == t
}

// PropagateOnCopyAssign follows the decorated provider.
func (t *Tracker) PropagateOnCopyAssign() bool {
	return PropagatesOnCopyAssign(t.inner)
}

// SelectOnCopy keeps copies on the same tracker so their calls are counted.
func (t *Tracker) SelectOnCopy() Provider { return t }
