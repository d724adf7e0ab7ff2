package dataset

import (
	"fmt"
	"io"
	"sort"

	"github.com/conduit-lang/irsearch/internal/index"
)

// WriteVocabulary writes "term count" lines sorted by descending
// collection frequency, mirroring the reference implementation's
// utils/logs.py write_vocabulary.
func WriteVocabulary(idx *index.Index, w io.Writer) error {
	terms := idx.UniqueTerms()
	type termCount struct {
		term  string
		count int
	}
	counts := make([]termCount, 0, len(terms))
	for _, term := range terms {
		sum := 0
		for id := range idx.Postings(term) {
			sum += idx.TF(term, id)
		}
		counts = append(counts, termCount{term: term, count: sum})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].term < counts[j].term
	})
	for _, tc := range counts {
		if _, err := fmt.Fprintf(w, "%s %d\n", tc.term, tc.count); err != nil {
			return err
		}
	}
	return nil
}

// WriteIndexSummary writes a one-line-per-stat human summary of an
// index: document count, vocabulary size, average document length.
func WriteIndexSummary(idx *index.Index, w io.Writer) error {
	_, err := fmt.Fprintf(w, "documents: %d\nvocabulary: %d\navg_document_length: %.2f\n",
		idx.DocumentsCount(), len(idx.UniqueTerms()), idx.AvgDocumentLength())
	return err
}
