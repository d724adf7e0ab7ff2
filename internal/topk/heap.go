// Package topk implements the bounded top-k collector of spec.md
// §4.7: a fixed-capacity min-heap of (score, doc_id) entries.
package topk

import (
	"container/heap"
	"sort"
)

// Entry is a scored document id. Ties in score are broken by
// ascending DocID, strengthening the unspecified source behaviour for
// deterministic results (spec.md §4.7).
type Entry struct {
	Score float64
	DocID int64
}

type entryHeap []Entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	// Min-heap over (score, doc_id): on equal scores the larger doc_id
	// compares as smaller, so ties evict the larger doc_id first and
	// the survivors keep the smaller doc_ids that Sorted() lists first.
	return h[i].DocID > h[j].DocID
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) { *h = append(*h, x.(Entry)) }

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Collector is a fixed-capacity min-heap yielding the k
// highest-scored entries pushed into it.
type Collector struct {
	capacity int
	h        entryHeap
}

// New builds a Collector bounded to capacity entries.
func New(capacity int) *Collector {
	c := &Collector{capacity: capacity}
	heap.Init(&c.h)
	return c
}

// Push inserts entry, evicting the current minimum if capacity is
// exceeded.
func (c *Collector) Push(entry Entry) {
	heap.Push(&c.h, entry)
	if c.h.Len() > c.capacity {
		heap.Pop(&c.h)
	}
}

// Sorted returns the collected entries in descending score order
// (ties broken by ascending doc_id).
func (c *Collector) Sorted() []Entry {
	out := make([]Entry, len(c.h))
	copy(out, c.h)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].DocID < out[j].DocID
	})
	return out
}

// Len returns the number of entries currently collected.
func (c *Collector) Len() int { return c.h.Len() }
