package boolean

import (
	"sort"

	"github.com/conduit-lang/irsearch/internal/document"
	"github.com/conduit-lang/irsearch/internal/index"
)

// Engine answers Boolean queries against a positional index.
type Engine struct {
	idx        *index.Index
	normalizer *Normalizer
}

// New builds a Boolean engine over idx, normalising TERM literals with
// normalizer.
func New(idx *index.Index, normalizer *Normalizer) *Engine {
	return &Engine{idx: idx, normalizer: normalizer}
}

// Search parses query, evaluates it against the index, and returns the
// first k documents ordered by ascending doc_id for determinism
// (spec.md §4.9 — ordering is otherwise unspecified by the source).
func (e *Engine) Search(query string, k int) ([]*document.Document, error) {
	parser := NewParser(query, e.normalizer)
	ast, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	all := e.idx.AllDocIDs()
	lookup := func(term string) map[int64]struct{} {
		postings := e.idx.Postings(term)
		out := make(map[int64]struct{}, len(postings))
		for id := range postings {
			out[id] = struct{}{}
		}
		return out
	}

	matched := ast.Evaluate(lookup, all)
	ids := make([]int64, 0, len(matched))
	for id := range matched {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	if k < len(ids) {
		ids = ids[:k]
	}
	out := make([]*document.Document, 0, len(ids))
	for _, id := range ids {
		out = append(out, e.idx.Document(id))
	}
	return out, nil
}
