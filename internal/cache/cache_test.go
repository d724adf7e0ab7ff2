package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/irsearch/internal/document"
	"github.com/conduit-lang/irsearch/internal/index"
	"github.com/conduit-lang/irsearch/internal/lexer"
)

func sampleIndex(t *testing.T) *index.Index {
	t.Helper()
	idx := index.New()
	doc := document.New(idx.Counter(), "", "krásné město Plzeň")
	doc.Tokenize(lexer.NewWhitespace(" "))
	idx.AddDocument(doc)
	return idx
}

func TestFileStore_MissThenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "index.bin"))

	_, ok, err := store.Load("")
	require.NoError(t, err)
	assert.False(t, ok)

	idx := sampleIndex(t)
	require.NoError(t, store.Save("", idx))

	loaded, ok, err := store.Load("")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, idx.DocumentsCount(), loaded.DocumentsCount())
}

func TestRedisStore_RoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, "irsearch:", time.Minute)

	_, ok, err := store.Load("zh")
	require.NoError(t, err)
	assert.False(t, ok)

	idx := sampleIndex(t)
	require.NoError(t, store.Save("zh", idx))

	loaded, ok, err := store.Load("zh")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, idx.DocumentsCount(), loaded.DocumentsCount())
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenSQLiteStore(filepath.Join(dir, "cache.sqlite3"))
	require.NoError(t, err)
	defer store.Close()

	idx := sampleIndex(t)
	require.NoError(t, store.Save("cw", idx))

	loaded, ok, err := store.Load("cw")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, idx.DocumentsCount(), loaded.DocumentsCount())

	// Overwriting an existing key upserts rather than erroring.
	require.NoError(t, store.Save("cw", idx))
}
