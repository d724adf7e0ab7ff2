package cache

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/conduit-lang/irsearch/internal/ierrors"
	"github.com/conduit-lang/irsearch/internal/index"
)

// SQLiteStore persists the index blob as a row in a SQLite table
// instead of a single opaque file, for embedders that want to inspect
// or back up the cache with ordinary SQL tooling.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if needed) a SQLite database at path
// and ensures the cache table exists.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, ierrors.CacheIOError("open sqlite cache", err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS index_cache (
		cache_key TEXT PRIMARY KEY,
		blob      BLOB NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, ierrors.CacheIOError("create sqlite cache table", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) Load(key string) (*index.Index, bool, error) {
	var blob []byte
	err := s.db.QueryRow(`SELECT blob FROM index_cache WHERE cache_key = ?`, key).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, ierrors.CacheIOError("sqlite select", err)
	}
	idx, err := decodeFromBytes(blob)
	if err != nil {
		return nil, false, err
	}
	return idx, true, nil
}

func (s *SQLiteStore) Save(key string, idx *index.Index) error {
	data, err := encodeToBytes(idx)
	if err != nil {
		return ierrors.CacheIOError("encode index", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO index_cache (cache_key, blob) VALUES (?, ?)
		 ON CONFLICT(cache_key) DO UPDATE SET blob = excluded.blob`,
		key, data,
	)
	if err != nil {
		return ierrors.CacheIOError("sqlite upsert", err)
	}
	return nil
}
