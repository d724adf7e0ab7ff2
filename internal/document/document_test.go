package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/irsearch/internal/lexer"
	"github.com/conduit-lang/irsearch/internal/pipeline"
)

func TestCounter_StrictlyIncreasing(t *testing.T) {
	c := NewCounter()
	a := c.Next()
	b := c.Next()
	assert.Equal(t, a+1, b)
}

func TestCounter_SetMin(t *testing.T) {
	c := NewCounter()
	c.Next()
	c.Next()
	c.SetMin(100)
	assert.Equal(t, int64(100), c.Next())
}

func TestDocument_TokenizeAndPreprocess(t *testing.T) {
	c := NewCounter()
	doc := New(c, "", "Plzeň je krásné město")
	doc.Tokenize(lexer.NewRegex())
	doc.Preprocess(pipeline.New(pipeline.NewLowercase()))
	require.NotEmpty(t, doc.Tokens)
	for _, tok := range doc.Tokens {
		assert.Equal(t, strings.ToLower(tok.ProcessedForm), tok.ProcessedForm)
	}
}

func TestDocument_UniqueTermsDedupes(t *testing.T) {
	c := NewCounter()
	doc := New(c, "", "krásné krásné město")
	doc.Tokenize(lexer.NewWhitespace(" "))
	terms := doc.UniqueTerms()
	assert.Len(t, terms, 2)
}
