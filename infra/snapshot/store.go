package snapshot

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"

	"arenalist/domain/list"
	"arenalist/infra/logging"
	"arenalist/infra/memory"
	"arenalist/infra/sentinel"
)

const (
	// ErrNotFound is returned when no snapshot has the requested name.
	ErrNotFound = sentinel.Error("snapshot: not found")

	// ErrCorrupt is returned when stored records do not decode.
	ErrCorrupt = sentinel.Error("snapshot: corrupt")

	// ErrInvalidName is returned for empty names or names containing '/'.
	ErrInvalidName = sentinel.Error("snapshot: invalid name")
)

// Store is a directory of named list snapshots.
type Store struct {
	db *pebble.DB
}

// Open opens or creates the store in dir.
func Open(dir string) (*Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open snapshot store %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the snapshot name with the elements of l.
func Save[T any](s *Store, name string, l *list.List[T]) error {
	if err := validName(name); err != nil {
		return err
	}

	b := s.db.NewBatch()
	defer b.Close()

	if err := b.DeleteRange(elemPrefix(name), prefixEnd(elemPrefix(name)), nil); err != nil {
		return fmt.Errorf("clear snapshot %q: %w", name, err)
	}

	pos := 0
	for v := range l.All() {
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(v); err != nil {
			return fmt.Errorf("encode element %d of %q: %w", pos, name, err)
		}
		if err := b.Set(elemKey(name, pos), buf.Bytes(), nil); err != nil {
			return fmt.Errorf("stage element %d of %q: %w", pos, name, err)
		}
		pos++
	}

	h := Header{Name: name, Count: pos, Created: time.Now()}
	if err := b.Set(headerKey(name), encodeHeader(h), nil); err != nil {
		return fmt.Errorf("stage header of %q: %w", name, err)
	}
	if err := b.Commit(pebble.Sync); err != nil {
		return fmt.Errorf("commit snapshot %q: %w", name, err)
	}

	logging.Logger().Debug("snapshot saved", "name", name, "count", pos)
	return nil
}

// Load rebuilds the snapshot name as a list allocated from a. If a runs
// out of storage the partial list is released and the error returned.
func Load[T any](s *Store, name string, a memory.Allocator[T]) (*list.List[T], error) {
	h, err := s.Info(name)
	if err != nil {
		return nil, err
	}

	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: elemPrefix(name),
		UpperBound: prefixEnd(elemPrefix(name)),
	})
	if err != nil {
		return nil, fmt.Errorf("scan snapshot %q: %w", name, err)
	}
	defer iter.Close()

	var values []T
	for iter.First(); iter.Valid(); iter.Next() {
		var v T
		if err := gob.NewDecoder(bytes.NewReader(iter.Value())).Decode(&v); err != nil {
			return nil, fmt.Errorf("decode %s: %v: %w", iter.Key(), err, ErrCorrupt)
		}
		values = append(values, v)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("scan snapshot %q: %w", name, err)
	}
	if len(values) != h.Count {
		return nil, fmt.Errorf("snapshot %q has %d of %d elements: %w", name, len(values), h.Count, ErrCorrupt)
	}

	l, err := list.FromSlice(values, a)
	if err != nil {
		return nil, fmt.Errorf("restore snapshot %q: %w", name, err)
	}
	logging.Logger().Debug("snapshot loaded", "name", name, "count", l.Len())
	return l, nil
}

// Info returns the header of snapshot name.
func (s *Store) Info(name string) (Header, error) {
	if err := validName(name); err != nil {
		return Header{}, err
	}
	val, closer, err := s.db.Get(headerKey(name))
	if errors.Is(err, pebble.ErrNotFound) {
		return Header{}, fmt.Errorf("snapshot %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return Header{}, fmt.Errorf("read header of %q: %w", name, err)
	}
	defer closer.Close()

	return decodeHeader(name, val)
}

// Delete removes snapshot name. Deleting a missing snapshot is not an error.
func (s *Store) Delete(name string) error {
	if err := validName(name); err != nil {
		return err
	}
	b := s.db.NewBatch()
	defer b.Close()

	if err := b.DeleteRange(namePrefix(name), prefixEnd(namePrefix(name)), nil); err != nil {
		return fmt.Errorf("delete snapshot %q: %w", name, err)
	}
	return b.Commit(pebble.Sync)
}

// Names lists stored snapshots in key order.
func (s *Store) Names() ([]string, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(keyPrefix),
		UpperBound: prefixEnd([]byte(keyPrefix)),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var names []string
	for iter.First(); iter.Valid(); iter.Next() {
		if name, ok := parseHeaderKey(iter.Key()); ok {
			names = append(names, name)
		}
	}
	return names, iter.Error()
}
