// Package ranked implements the ltc.ltc / ltu.ltc vector-space engine
// of spec.md §4.8.
package ranked

import (
	"fmt"

	"github.com/conduit-lang/irsearch/internal/document"
	"github.com/conduit-lang/irsearch/internal/ierrors"
	"github.com/conduit-lang/irsearch/internal/index"
	"github.com/conduit-lang/irsearch/internal/lexer"
	"github.com/conduit-lang/irsearch/internal/pipeline"
	"github.com/conduit-lang/irsearch/internal/topk"
	"github.com/conduit-lang/irsearch/internal/vector"
)

// Method names the supported TF-IDF scoring scheme.
type Method string

const (
	LTCLTC Method = "ltc.ltc"
	LTULTC Method = "ltu.ltc"

	// pivotSlope is the slope parameter used by LTU document
	// weighting, matching the reference implementation's constant.
	pivotSlope = 0.75
)

// Engine is a stateless, read-only ranked search engine over a
// positional index. Construction precomputes everything collection-
// specific so repeated searches don't redo that work.
type Engine struct {
	idx               *index.Index
	tokenizer         lexer.Tokenizer
	pipeline          *pipeline.Pipeline
	totalDocuments    int
	avgDocumentLength float64
}

// New builds a ranked engine over idx. tz and pl are the tokeniser and
// pipeline used to normalise incoming queries the same way documents
// were normalised at index time.
func New(idx *index.Index, tz lexer.Tokenizer, pl *pipeline.Pipeline) *Engine {
	return &Engine{
		idx:               idx,
		tokenizer:         tz,
		pipeline:          pl,
		totalDocuments:    idx.DocumentsCount(),
		avgDocumentLength: idx.AvgDocumentLength(),
	}
}

// Search scores the candidate set (documents containing at least one
// query term) against the query vector, returning the top k documents
// by descending score. An empty candidate set returns an empty,
// non-error result.
func (e *Engine) Search(query string, k int, method Method) ([]*document.Document, error) {
	if method != LTCLTC && method != LTULTC {
		return nil, ierrors.ConfigError(fmt.Sprintf("unknown ranked search method %q", method))
	}

	queryDoc := document.New(document.NewCounter(), "", query)
	queryDoc.Tokenize(e.tokenizer)
	queryDoc.Preprocess(e.pipeline)

	queryTerms := queryDoc.UniqueTerms()
	if len(queryTerms) == 0 {
		return nil, nil
	}

	queryTF := make([]float64, len(queryTerms))
	queryDF := make([]int, len(queryTerms))
	for i, term := range queryTerms {
		count := 0
		for _, tok := range queryDoc.Tokens {
			if tok.ProcessedForm == term {
				count++
			}
		}
		queryTF[i] = float64(count)
		queryDF[i] = e.idx.DF(term)
	}
	// Both ltc.ltc and ltu.ltc score the query with the ltc scheme.
	queryVec := vector.LTC(queryTF, queryDF, e.totalDocuments)
	queryMag := vector.Magnitude(queryVec)

	candidates := e.candidateSet(queryTerms)
	if len(candidates) == 0 {
		return nil, nil
	}

	termIndex := make(map[string]int, len(queryTerms))
	for i, term := range queryTerms {
		termIndex[term] = i
	}

	collector := topk.New(k)
	for docID := range candidates {
		docTerms := e.idx.DocumentUniqueTerms(docID)
		docTF := make([]float64, len(docTerms))
		docDF := make([]int, len(docTerms))
		for i, term := range docTerms {
			docTF[i] = float64(e.idx.TF(term, docID))
			docDF[i] = e.idx.DF(term)
		}

		var docVec []float64
		switch method {
		case LTCLTC:
			docVec = vector.LTC(docTF, docDF, e.totalDocuments)
		case LTULTC:
			docVec = vector.LTU(docTF, docDF, e.totalDocuments, float64(e.idx.DocumentLength(docID)), e.avgDocumentLength, pivotSlope)
		}

		// Optimisation: map the document vector onto the query's term
		// ordering, padding with 0 for query terms absent from the
		// document, so scoring never needs a full |T| dot product.
		docVecMappedToQuery := make([]float64, len(queryTerms))
		for i, term := range docTerms {
			if qi, ok := termIndex[term]; ok {
				docVecMappedToQuery[qi] = docVec[i]
			}
		}

		var score float64
		switch method {
		case LTCLTC:
			score = vector.CosineWithNorm(queryVec, docVecMappedToQuery, queryMag*vector.Magnitude(docVec))
		case LTULTC:
			score = vector.Dot(queryVec, docVecMappedToQuery)
		}

		collector.Push(topk.Entry{Score: score, DocID: docID})
	}

	sorted := collector.Sorted()
	out := make([]*document.Document, 0, len(sorted))
	for _, entry := range sorted {
		out = append(out, e.idx.Document(entry.DocID))
	}
	return out, nil
}

// candidateSet returns the union of postings keys over queryTerms:
// documents with non-zero score are exactly those containing at least
// one query term.
func (e *Engine) candidateSet(queryTerms []string) map[int64]struct{} {
	out := make(map[int64]struct{})
	for _, term := range queryTerms {
		for docID := range e.idx.Postings(term) {
			out[docID] = struct{}{}
		}
	}
	return out
}
