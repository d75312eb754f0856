package list

import "arenalist/infra/memory"

// node is both the element node and, as List.root, the sentinel. The
// sentinel's value and blk are never used.
type node[T any] struct {
	prev, next *node[T]
	value      T
	blk        memory.Block
}

// Copier is implemented by element types whose copies can fail. The list
// copies such values through Copy wherever it stores a copy.
type Copier[T any] interface {
	Copy() (T, error)
}

// Initializer is implemented by pointers to element types whose default
// value needs set-up that can fail.
type Initializer interface {
	Init() error
}

func copyOf[T any](v T) (T, error) {
	if c, ok := any(v).(Copier[T]); ok {
		return c.Copy()
	}
	return v, nil
}

func copier[T any](v T) func() (T, error) {
	return func() (T, error) { return copyOf(v) }
}

func defaultValue[T any]() (T, error) {
	var v T
	if in, ok := any(&v).(Initializer); ok {
		if err := in.Init(); err != nil {
			var zero T
			return zero, err
		}
	}
	return v, nil
}
