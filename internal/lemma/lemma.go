// Package lemma defines the lemmatiser collaborator contract
// (spec.md §6) and a couple of concrete implementations: a no-op
// default for tests and environments with no lemmatiser, and an
// LRU-memoised wrapper for slow external lemmatisers.
package lemma

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Lemmatiser is the opaque external collaborator: given text, return
// whitespace-separated lemmas in input order. Implementations must be
// pure and may be slow.
type Lemmatiser interface {
	Lemmatise(text string) (string, error)
	// BulkLemmatise processes many texts for throughput. NoOp returns
	// a copy of the slice, Func maps its function over the slice, and
	// Cached serves cached texts and sends the misses to the inner
	// lemmatiser's BulkLemmatise in one call; a real collaborator may
	// batch internally.
	BulkLemmatise(texts []string) ([]string, error)
}

// NoOp is the identity lemmatiser: it returns its input unchanged.
// Used in tests and wherever no morphological collaborator is wired.
type NoOp struct{}

func (NoOp) Lemmatise(text string) (string, error) { return text, nil }

func (NoOp) BulkLemmatise(texts []string) ([]string, error) {
	out := make([]string, len(texts))
	copy(out, texts)
	return out, nil
}

// Func adapts a plain function to the Lemmatiser interface.
type Func func(text string) (string, error)

func (f Func) Lemmatise(text string) (string, error) { return f(text) }

func (f Func) BulkLemmatise(texts []string) ([]string, error) {
	out := make([]string, len(texts))
	for i, t := range texts {
		lemmatised, err := f(t)
		if err != nil {
			return nil, err
		}
		out[i] = lemmatised
	}
	return out, nil
}

// Cached wraps a Lemmatiser with a bounded LRU memoising single-term
// lookups. This is most useful for Boolean query parsing, where the
// same frequent TERM literals are re-lemmatised across many queries.
type Cached struct {
	inner Lemmatiser
	cache *lru.Cache[string, string]
}

// NewCached builds a Cached lemmatiser with room for size entries.
func NewCached(inner Lemmatiser, size int) (*Cached, error) {
	if size <= 0 {
		size = 4096
	}
	c, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &Cached{inner: inner, cache: c}, nil
}

func (c *Cached) Lemmatise(text string) (string, error) {
	if v, ok := c.cache.Get(text); ok {
		return v, nil
	}
	out, err := c.inner.Lemmatise(text)
	if err != nil {
		return "", err
	}
	c.cache.Add(text, out)
	return out, nil
}

func (c *Cached) BulkLemmatise(texts []string) ([]string, error) {
	out := make([]string, len(texts))
	var misses []string
	var missIdx []int
	for i, t := range texts {
		if v, ok := c.cache.Get(t); ok {
			out[i] = v
			continue
		}
		misses = append(misses, t)
		missIdx = append(missIdx, i)
	}
	if len(misses) == 0 {
		return out, nil
	}
	resolved, err := c.inner.BulkLemmatise(misses)
	if err != nil {
		return nil, err
	}
	for j, idx := range missIdx {
		out[idx] = resolved[j]
		c.cache.Add(misses[j], resolved[j])
	}
	return out, nil
}
