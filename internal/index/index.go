// Package index implements the positional inverted index (spec.md
// §3/§4.5): term -> (doc_id -> ordered positions), plus the documents
// it owns by id and every derived statistic the ranked/Boolean engines
// need.
package index

import (
	"sort"

	"github.com/conduit-lang/irsearch/internal/document"
)

// Index owns documents by id and the term -> doc -> positions mapping
// built from them. The zero value is not usable; construct with New.
type Index struct {
	documents   map[int64]*document.Document
	postings    map[string]map[int64][]int
	totalTokens int64
	counter     *document.Counter
}

// New builds an empty index with its own id allocator.
func New() *Index {
	return &Index{
		documents: make(map[int64]*document.Document),
		postings:  make(map[string]map[int64][]int),
		counter:   document.NewCounter(),
	}
}

// Counter exposes the index's id allocator so callers can construct
// documents that will be added to this index.
func (idx *Index) Counter() *document.Counter { return idx.counter }

// AddDocument registers doc and appends one posting entry per token.
// Positions are appended in emission order, matching the tokeniser's
// left-to-right scan, so they arrive already strictly increasing.
// AddDocument builds the per-term posting lists in a local map first,
// then registers doc in idx.documents and merges the staged lists into
// idx.postings one term at a time. The merge is not a single atomic
// step and the index holds no lock, so a read that runs concurrently
// with AddDocument is unsynchronised and can see the document only
// partly indexed.
func (idx *Index) AddDocument(doc *document.Document) {
	staged := make(map[string][]int)
	for _, tok := range doc.Tokens {
		staged[tok.ProcessedForm] = append(staged[tok.ProcessedForm], tok.Position)
	}

	idx.documents[doc.DocID] = doc
	idx.totalTokens += int64(len(doc.Tokens))
	for term, positions := range staged {
		byDoc, ok := idx.postings[term]
		if !ok {
			byDoc = make(map[int64][]int)
			idx.postings[term] = byDoc
		}
		byDoc[doc.DocID] = append(byDoc[doc.DocID], positions...)
	}
}

// Document returns the document for id, or nil if absent.
func (idx *Index) Document(id int64) *document.Document {
	return idx.documents[id]
}

// Documents returns the full doc_id -> Document map. Callers must not
// mutate the returned map.
func (idx *Index) Documents() map[int64]*document.Document {
	return idx.documents
}

// AllDocIDs returns every document id currently in the index.
func (idx *Index) AllDocIDs() map[int64]struct{} {
	out := make(map[int64]struct{}, len(idx.documents))
	for id := range idx.documents {
		out[id] = struct{}{}
	}
	return out
}

// Postings returns the doc_id -> positions mapping for term, or nil if
// the term key doesn't exist.
func (idx *Index) Postings(term string) map[int64][]int {
	return idx.postings[term]
}

// DF returns the document frequency of term: the number of distinct
// documents containing it.
func (idx *Index) DF(term string) int {
	return len(idx.postings[term])
}

// TF returns the term frequency of term within doc: the number of
// positions recorded, 0 if absent.
func (idx *Index) TF(term string, docID int64) int {
	byDoc, ok := idx.postings[term]
	if !ok {
		return 0
	}
	return len(byDoc[docID])
}

// Positions returns the ordered positions of term within doc, and
// whether the pair is present at all.
func (idx *Index) Positions(term string, docID int64) ([]int, bool) {
	byDoc, ok := idx.postings[term]
	if !ok {
		return nil, false
	}
	positions, ok := byDoc[docID]
	return positions, ok
}

// DocumentLength returns the number of retained tokens for doc.
func (idx *Index) DocumentLength(docID int64) int {
	doc, ok := idx.documents[docID]
	if !ok {
		return 0
	}
	return doc.Length()
}

// DocumentsCount returns the number of documents in the index (N).
func (idx *Index) DocumentsCount() int { return len(idx.documents) }

// UniqueTerms returns the index vocabulary in a stable (sorted) order,
// so repeated calls and reports over the same index list terms
// identically.
func (idx *Index) UniqueTerms() []string {
	terms := make([]string, 0, len(idx.postings))
	for term := range idx.postings {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// DocumentUniqueTerms returns the distinct terms present in doc, sorted
// for determinism.
func (idx *Index) DocumentUniqueTerms(docID int64) []string {
	doc, ok := idx.documents[docID]
	if !ok {
		return nil
	}
	terms := doc.UniqueTerms()
	sort.Strings(terms)
	return terms
}

// AvgDocumentLength returns the mean document length across the
// collection, 0 if the index is empty.
func (idx *Index) AvgDocumentLength() float64 {
	if len(idx.documents) == 0 {
		return 0
	}
	return float64(idx.totalTokens) / float64(len(idx.documents))
}
