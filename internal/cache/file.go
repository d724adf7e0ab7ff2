package cache

import (
	"errors"
	"os"

	"github.com/conduit-lang/irsearch/internal/ierrors"
	"github.com/conduit-lang/irsearch/internal/index"
)

// FileStore is the default Store: one binary file on disk. It
// ignores the key parameter of Store and always reads/writes Path.
type FileStore struct {
	Path string
}

// NewFileStore builds a FileStore rooted at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (f *FileStore) Load(_ string) (*index.Index, bool, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, ierrors.CacheIOError("read cache file", err)
	}
	idx, err := decodeFromBytes(data)
	if err != nil {
		return nil, false, err
	}
	return idx, true, nil
}

func (f *FileStore) Save(_ string, idx *index.Index) error {
	data, err := encodeToBytes(idx)
	if err != nil {
		return ierrors.CacheIOError("encode index", err)
	}
	// Write to a temp file first so a crash mid-write never leaves a
	// truncated cache behind for the next Load to choke on.
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return ierrors.CacheIOError("write temp cache file", err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return ierrors.CacheIOError("rename temp cache file", err)
	}
	return nil
}
