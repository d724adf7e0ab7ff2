package boolean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/irsearch/internal/document"
	"github.com/conduit-lang/irsearch/internal/index"
	"github.com/conduit-lang/irsearch/internal/lexer"
)

func TestParser_TrailingTokenIsError(t *testing.T) {
	p := NewParser("apple )", nil)
	_, err := p.Parse()
	require.Error(t, err)
}

func TestParser_UnexpectedTokenNamesIt(t *testing.T) {
	p := NewParser("AND apple", nil)
	_, err := p.Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"AND"`)
}

func TestParser_Precedence(t *testing.T) {
	// apple AND (banana OR NOT cherry) must parse without error and
	// produce the expected node shape.
	p := NewParser("apple AND (banana OR NOT cherry)", nil)
	node, err := p.Parse()
	require.NoError(t, err)
	and, ok := node.(*And)
	require.True(t, ok)
	_, ok = and.Left.(*Term)
	require.True(t, ok)
	or, ok := and.Right.(*Or)
	require.True(t, ok)
	_, ok = or.Left.(*Term)
	require.True(t, ok)
	not, ok := or.Right.(*Not)
	require.True(t, ok)
	_, ok = not.Child.(*Term)
	require.True(t, ok)
}

func buildBooleanIndex(t *testing.T) *index.Index {
	t.Helper()
	idx := index.New()
	tz := lexer.NewWhitespace(" ")
	for _, text := range []string{"apple banana", "apple cherry", "banana"} {
		doc := document.New(idx.Counter(), "", text)
		doc.Tokenize(tz)
		idx.AddDocument(doc)
	}
	return idx
}

func TestEngine_AppleAndBananaOrNotCherry(t *testing.T) {
	idx := buildBooleanIndex(t)
	eng := New(idx, nil)
	results, err := eng.Search("apple AND (banana OR NOT cherry)", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "apple banana", results[0].Text)
}

func TestEngine_DeMorgan(t *testing.T) {
	idx := buildBooleanIndex(t)
	eng := New(idx, nil)

	lhs, err := eng.Search("NOT (apple AND banana)", 100)
	require.NoError(t, err)
	rhs, err := eng.Search("(NOT apple) OR (NOT banana)", 100)
	require.NoError(t, err)

	lhsIDs := docIDs(lhs)
	rhsIDs := docIDs(rhs)
	assert.Equal(t, lhsIDs, rhsIDs)
}

func TestEngine_Idempotence(t *testing.T) {
	idx := buildBooleanIndex(t)
	eng := New(idx, nil)
	a, err := eng.Search("apple", 100)
	require.NoError(t, err)
	b, err := eng.Search("apple AND apple", 100)
	require.NoError(t, err)
	assert.Equal(t, docIDs(a), docIDs(b))
}

func TestEngine_OrNotIsAllDocs(t *testing.T) {
	idx := buildBooleanIndex(t)
	eng := New(idx, nil)
	results, err := eng.Search("apple OR NOT apple", 100)
	require.NoError(t, err)
	assert.Equal(t, idx.DocumentsCount(), len(results))
}

func docIDs(docs []*document.Document) []int64 {
	ids := make([]int64, len(docs))
	for i, d := range docs {
		ids[i] = d.DocID
	}
	return ids
}
