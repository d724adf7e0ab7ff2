package lemma

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOp_IdentityBehaviour(t *testing.T) {
	out, err := NoOp{}.Lemmatise("running dogs")
	require.NoError(t, err)
	assert.Equal(t, "running dogs", out)

	in := []string{"running dogs", "better mice"}
	bulk, err := NoOp{}.BulkLemmatise(in)
	require.NoError(t, err)
	assert.Equal(t, in, bulk)

	// BulkLemmatise must not alias the input slice.
	bulk[0] = "mutated"
	assert.Equal(t, "running dogs", in[0])
}

func TestFunc_AdaptsPlainFunction(t *testing.T) {
	upper := Func(func(text string) (string, error) { return text + "!", nil })

	out, err := upper.Lemmatise("run")
	require.NoError(t, err)
	assert.Equal(t, "run!", out)

	bulk, err := upper.BulkLemmatise([]string{"run", "jump"})
	require.NoError(t, err)
	assert.Equal(t, []string{"run!", "jump!"}, bulk)
}

func TestFunc_BulkLemmatisePropagatesError(t *testing.T) {
	boom := errors.New("boom")
	failing := Func(func(text string) (string, error) {
		if text == "bad" {
			return "", boom
		}
		return text, nil
	})

	_, err := failing.BulkLemmatise([]string{"good", "bad"})
	assert.ErrorIs(t, err, boom)
}

// spyLemmatiser counts how many times the inner lemmatiser was asked to
// resolve a term, so tests can assert Cached actually serves hits from
// its LRU instead of re-invoking the collaborator.
type spyLemmatiser struct {
	calls int
	bulks int
}

func (s *spyLemmatiser) Lemmatise(text string) (string, error) {
	s.calls++
	return text + "#lemma", nil
}

func (s *spyLemmatiser) BulkLemmatise(texts []string) ([]string, error) {
	s.bulks++
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = t + "#lemma"
	}
	return out, nil
}

func TestCached_LemmatiseHitsCacheOnSecondCall(t *testing.T) {
	spy := &spyLemmatiser{}
	cached, err := NewCached(spy, 0)
	require.NoError(t, err)

	first, err := cached.Lemmatise("dog")
	require.NoError(t, err)
	assert.Equal(t, "dog#lemma", first)
	assert.Equal(t, 1, spy.calls)

	second, err := cached.Lemmatise("dog")
	require.NoError(t, err)
	assert.Equal(t, "dog#lemma", second)
	assert.Equal(t, 1, spy.calls, "second lookup of the same term must be served from the cache")

	_, err = cached.Lemmatise("cat")
	require.NoError(t, err)
	assert.Equal(t, 2, spy.calls, "a distinct term is a cache miss")
}

func TestCached_LemmatisePropagatesInnerError(t *testing.T) {
	boom := errors.New("boom")
	failing := Func(func(text string) (string, error) { return "", boom })
	cached, err := NewCached(failing, 0)
	require.NoError(t, err)

	_, err = cached.Lemmatise("dog")
	assert.ErrorIs(t, err, boom)
}

func TestCached_BulkLemmatisePartialHitAndMiss(t *testing.T) {
	spy := &spyLemmatiser{}
	cached, err := NewCached(spy, 0)
	require.NoError(t, err)

	// Warm the cache for "dog" only.
	_, err = cached.Lemmatise("dog")
	require.NoError(t, err)
	require.Equal(t, 1, spy.calls)

	out, err := cached.BulkLemmatise([]string{"dog", "cat", "dog", "bird"})
	require.NoError(t, err)
	assert.Equal(t, []string{"dog#lemma", "cat#lemma", "dog#lemma", "bird#lemma"}, out)
	assert.Equal(t, 1, spy.bulks, "misses are resolved in a single batch call")

	// The batch call's results now populate the cache too.
	out2, err := cached.BulkLemmatise([]string{"cat", "bird"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cat#lemma", "bird#lemma"}, out2)
	assert.Equal(t, 1, spy.bulks, "a fully-cached batch never reaches the inner lemmatiser")
}

func TestCached_BulkLemmatiseAllHitsSkipsInner(t *testing.T) {
	spy := &spyLemmatiser{}
	cached, err := NewCached(spy, 0)
	require.NoError(t, err)

	_, err = cached.BulkLemmatise([]string{"dog", "cat"})
	require.NoError(t, err)
	require.Equal(t, 1, spy.bulks)

	out, err := cached.BulkLemmatise([]string{"dog", "cat", "dog"})
	require.NoError(t, err)
	assert.Equal(t, []string{"dog#lemma", "cat#lemma", "dog#lemma"}, out)
	assert.Equal(t, 0, spy.calls)
	assert.Equal(t, 1, spy.bulks)
}
