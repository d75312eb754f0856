package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"time"
)

const keyPrefix = "list/"

// Header describes a stored snapshot.
type Header struct {
	Name    string
	Count   int
	Created time.Time
}

// binary encoding: [count:8][created:8]
func encodeHeader(h Header) []byte {
	buf := make([]byte, 16)
	binary.BigEndian.PutUint64(buf[0:8], uint64(h.Count))
	binary.BigEndian.PutUint64(buf[8:16], uint64(h.Created.UnixNano()))
	return buf
}

func decodeHeader(name string, b []byte) (Header, error) {
	if len(b) != 16 {
		return Header{}, fmt.Errorf("header of %q is %d bytes: %w", name, len(b), ErrCorrupt)
	}
	count := binary.BigEndian.Uint64(b[0:8])
	if count > math.MaxInt {
		return Header{}, fmt.Errorf("header of %q counts %d elements: %w", name, count, ErrCorrupt)
	}
	return Header{
		Name:    name,
		Count:   int(count),
		Created: time.Unix(0, int64(binary.BigEndian.Uint64(b[8:16]))),
	}, nil
}

func validName(name string) error {
	if name == "" || strings.ContainsAny(name, "/") {
		return fmt.Errorf("snapshot name %q: %w", name, ErrInvalidName)
	}
	return nil
}

// list/<name>/ is everything of one snapshot.
func namePrefix(name string) []byte {
	return []byte(keyPrefix + name + "/")
}

func headerKey(name string) []byte {
	return []byte(keyPrefix + name + "/h")
}

// list/<name>/e/<pos>
func elemPrefix(name string) []byte {
	return []byte(keyPrefix + name + "/e/")
}

func elemKey(name string, pos int) []byte {
	return []byte(fmt.Sprintf("%s%s/e/%020d", keyPrefix, name, pos))
}

// prefixEnd is the smallest key greater than every key starting with p.
func prefixEnd(p []byte) []byte {
	end := bytes.Clone(p)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

// parseHeaderKey returns the snapshot name of a header key.
func parseHeaderKey(k []byte) (string, bool) {
	s := string(k)
	if !strings.HasPrefix(s, keyPrefix) || !strings.HasSuffix(s, "/h") {
		return "", false
	}
	name := strings.TrimSuffix(strings.TrimPrefix(s, keyPrefix), "/h")
	if validName(name) != nil {
		return "", false
	}
	return name, true
}
