package index

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/irsearch/internal/document"
	"github.com/conduit-lang/irsearch/internal/lexer"
)

func buildSampleIndex(t *testing.T) *Index {
	t.Helper()
	idx := New()
	tz := lexer.NewWhitespace(" ")
	texts := []string{
		"Plzeň je krásné město a je to krásné místo",
		"Ostrava je ošklivé místo",
		"Praha je také krásné město Plzeň je hezčí",
	}
	for _, text := range texts {
		doc := document.New(idx.Counter(), "", text)
		doc.Tokenize(tz)
		idx.AddDocument(doc)
	}
	return idx
}

func TestIndex_DFMatchesDistinctDocsWithPositiveTF(t *testing.T) {
	idx := buildSampleIndex(t)
	for _, term := range idx.UniqueTerms() {
		count := 0
		for id := range idx.AllDocIDs() {
			if idx.TF(term, id) > 0 {
				count++
			}
		}
		assert.Equal(t, count, idx.DF(term), "term %q", term)
	}
}

func TestIndex_TFMatchesPositionsLength(t *testing.T) {
	idx := buildSampleIndex(t)
	for _, term := range idx.UniqueTerms() {
		for id := range idx.AllDocIDs() {
			positions, _ := idx.Positions(term, id)
			assert.Equal(t, len(positions), idx.TF(term, id))
			for i := 1; i < len(positions); i++ {
				assert.Less(t, positions[i-1], positions[i], "positions must be strictly increasing")
			}
		}
	}
}

func TestIndex_DocumentLengthEqualsSumOfTF(t *testing.T) {
	idx := buildSampleIndex(t)
	for id := range idx.AllDocIDs() {
		sum := 0
		for _, term := range idx.UniqueTerms() {
			sum += idx.TF(term, id)
		}
		assert.Equal(t, idx.DocumentLength(id), sum)
	}
}

func TestIndex_SerializeRoundTrip(t *testing.T) {
	idx := buildSampleIndex(t)
	var buf bytes.Buffer
	require.NoError(t, Encode(idx, &buf))

	decoded, err := Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, idx.DocumentsCount(), decoded.DocumentsCount())
	for _, term := range idx.UniqueTerms() {
		for id := range idx.AllDocIDs() {
			assert.Equal(t, idx.TF(term, id), decoded.TF(term, id))
		}
	}

	// Counter continuity: the next id allocated from the decoded index
	// must continue past the max existing doc_id.
	var maxID int64 = -1
	for id := range decoded.AllDocIDs() {
		if id > maxID {
			maxID = id
		}
	}
	assert.Equal(t, maxID+1, decoded.Counter().Next())
}

func TestIndex_AppendOnlyInsertion(t *testing.T) {
	idx := buildSampleIndex(t)
	before := idx.DocumentsCount()
	doc := document.New(idx.Counter(), "", "krásné město Ostrava")
	doc.Tokenize(lexer.NewWhitespace(" "))
	idx.AddDocument(doc)
	assert.Equal(t, before+1, idx.DocumentsCount())
	assert.Contains(t, idx.Postings("krásné"), doc.DocID)
}
