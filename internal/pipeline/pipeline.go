// Package pipeline implements the ordered chain of token transforms
// that turns raw tokens into normalised index terms.
package pipeline

import "github.com/conduit-lang/irsearch/internal/token"

// Transform exposes a single per-token normalisation step. original is
// the full source text the token was cut from; most transforms ignore
// it but HtmlStrip-style transforms that need surrounding context can
// use it.
type Transform interface {
	Apply(tok token.Token, original string) token.Token
}

// Pipeline is an ordered, deterministic sequence of Transforms. Order
// is part of the configuration: each transform runs over the full
// token slice before the next one starts, and tokens whose
// ProcessedForm goes empty or whitespace-only are dropped between
// stages so later transforms never see them.
type Pipeline struct {
	transforms []Transform
}

// New builds a pipeline from an ordered transform list.
func New(transforms ...Transform) *Pipeline {
	return &Pipeline{transforms: transforms}
}

// Process applies every transform in order, filtering dropped tokens
// after each stage. Every built-in transform is idempotent on its own
// output, but Process as a whole is idempotent only when no later stage
// produces a form that an earlier stage would change: with StopWords
// placed before Lowercase, for example, a token such as "A" survives
// the first pass as "a" and is dropped on a second pass if "a" is a
// stopword.
func (p *Pipeline) Process(tokens []token.Token, original string) []token.Token {
	current := tokens
	for _, tr := range p.transforms {
		next := make([]token.Token, 0, len(current))
		for _, tok := range current {
			out := tr.Apply(tok, original)
			if out.Empty() {
				continue
			}
			next = append(next, out)
		}
		current = next
	}
	return current
}
