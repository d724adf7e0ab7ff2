// Package cache implements the pluggable Store backends for the
// index lifecycle (spec.md §4.10, §6 "Index cache"). The default is a
// local binary file; Redis and SQLite backends are optional
// alternatives for embedders that want a shared or inspectable cache.
package cache

import (
	"bytes"

	"github.com/conduit-lang/irsearch/internal/ierrors"
	"github.com/conduit-lang/irsearch/internal/index"
)

// Store persists and retrieves a single positional index blob under a
// key (the default file backend ignores the key and uses its
// configured path; keyed backends like Redis/SQLite use it to
// disambiguate multiple datasets sharing one store).
type Store interface {
	// Load returns the decoded index, or (nil, false, nil) if no cache
	// entry exists yet.
	Load(key string) (*index.Index, bool, error)
	// Save encodes and persists idx under key.
	Save(key string, idx *index.Index) error
}

// encode/decode helpers shared by every backend so they all use the
// same binary layout from internal/index.
func encodeToBytes(idx *index.Index) ([]byte, error) {
	var buf bytes.Buffer
	if err := index.Encode(idx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeFromBytes(data []byte) (*index.Index, error) {
	idx, err := index.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ierrors.CacheIOError("decode cached index", err)
	}
	return idx, nil
}
