// Package document holds the Document record and the injectable id
// allocator described in spec.md §4.4/§9.
package document

import (
	"sync/atomic"

	"github.com/conduit-lang/irsearch/internal/lexer"
	"github.com/conduit-lang/irsearch/internal/pipeline"
	"github.com/conduit-lang/irsearch/internal/token"
)

// Counter is an explicit, injectable id allocator. spec.md §9 flags
// the reference implementation's class-level counter as something to
// re-architect as an owned value rather than global state; each index
// owns one, and code that builds documents for that index (such as the
// dataset build) passes it into document construction.
type Counter struct {
	next atomic.Int64
}

// NewCounter builds a counter starting at 0.
func NewCounter() *Counter { return &Counter{} }

// Next allocates and returns the next id, strictly increasing within
// this Counter's lifetime.
func (c *Counter) Next() int64 { return c.next.Add(1) - 1 }

// SetMin bumps the counter forward so the next allocated id is at
// least min, used after loading a pre-built index cache to avoid
// reusing ids (spec.md §4.4).
func (c *Counter) SetMin(min int64) {
	for {
		cur := c.next.Load()
		if cur >= min {
			return
		}
		if c.next.CompareAndSwap(cur, min) {
			return
		}
	}
}

// Document holds raw text, the token sequence produced by
// tokenising+preprocessing, and a stable id.
type Document struct {
	DocID  int64
	Title  string
	Text   string
	Tokens []token.Token
}

// New allocates a Document with the next id from c. content is title +
// " " + text, tokenised as a unit so positions stay meaningful across
// both fields (mirroring the reference Document.content assembly).
func New(c *Counter, title, text string) *Document {
	return &Document{
		DocID: c.Next(),
		Title: title,
		Text:  text,
	}
}

// content returns the text the tokeniser should see.
func (d *Document) content() string {
	if d.Title == "" {
		return d.Text
	}
	return d.Title + " " + d.Text
}

// Tokenize runs tz over the document's content and stores the result.
func (d *Document) Tokenize(tz lexer.Tokenizer) *Document {
	d.Tokens = tz.Tokenize(d.content())
	return d
}

// Preprocess runs p over the current token sequence.
func (d *Document) Preprocess(p *pipeline.Pipeline) *Document {
	d.Tokens = p.Process(d.Tokens, d.content())
	return d
}

// UniqueTerms returns the distinct processed forms retained on this
// document after preprocessing.
func (d *Document) UniqueTerms() []string {
	seen := make(map[string]struct{}, len(d.Tokens))
	out := make([]string, 0, len(d.Tokens))
	for _, tok := range d.Tokens {
		if _, ok := seen[tok.ProcessedForm]; ok {
			continue
		}
		seen[tok.ProcessedForm] = struct{}{}
		out = append(out, tok.ProcessedForm)
	}
	return out
}

// Length returns the number of retained tokens (including
// repetitions), i.e. document_length in spec.md §3.
func (d *Document) Length() int { return len(d.Tokens) }
