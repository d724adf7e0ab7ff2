package boolean

import (
	"github.com/conduit-lang/irsearch/internal/ierrors"
	"github.com/conduit-lang/irsearch/internal/lexer"
	"github.com/conduit-lang/irsearch/internal/lemma"
	"github.com/conduit-lang/irsearch/internal/pipeline"
)

// Normalizer pushes a raw TERM literal through the same
// lemmatise->tokenise->pipeline chain corpus text receives, so Boolean
// lookups match indexed forms (spec.md §4.9).
type Normalizer struct {
	Lemmatiser lemma.Lemmatiser
	Tokenizer  lexer.Tokenizer
	Pipeline   *pipeline.Pipeline
}

func (n *Normalizer) normalize(literal string) string {
	text := literal
	if n.Lemmatiser != nil {
		if lemmatised, err := n.Lemmatiser.Lemmatise(literal); err == nil && lemmatised != "" {
			text = lemmatised
		}
	}
	tokens := n.Tokenizer.Tokenize(text)
	if n.Pipeline != nil {
		tokens = n.Pipeline.Process(tokens, text)
	}
	if len(tokens) == 0 {
		return literal
	}
	return tokens[0].ProcessedForm
}

// Parser is a recursive-descent parser for the grammar:
//
//	expr   := term   ("OR"  term  )*
//	term   := factor ("AND" factor)*
//	factor := "NOT" base | base
//	base   := "(" expr ")" | TERM
type Parser struct {
	tokens     []Tok
	pos        int
	normalizer *Normalizer
}

// NewParser builds a Parser for query text, normalising TERM literals
// with normalizer (nil disables normalisation, used by tests that want
// raw literals as lookup keys).
func NewParser(query string, normalizer *Normalizer) *Parser {
	return &Parser{tokens: Lex(query), normalizer: normalizer}
}

func (p *Parser) current() Tok {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return Tok{Kind: TokEOF}
}

func (p *Parser) advance() Tok {
	t := p.current()
	if t.Kind != TokEOF {
		p.pos++
	}
	return t
}

// Parse returns the AST for the full query, or a *ierrors.Error of
// kind Syntax naming the unexpected token.
func (p *Parser) Parse() (Node, error) {
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.current().Kind != TokEOF {
		return nil, ierrors.SyntaxError(p.current().Kind.String())
	}
	return node, nil
}

func (p *Parser) parseExpr() (Node, error) {
	node, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == TokOr {
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		node = &Or{Left: node, Right: right}
	}
	return node, nil
}

func (p *Parser) parseTerm() (Node, error) {
	node, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == TokAnd {
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node = &And{Left: node, Right: right}
	}
	return node, nil
}

func (p *Parser) parseFactor() (Node, error) {
	if p.current().Kind == TokNot {
		p.advance()
		child, err := p.parseBase()
		if err != nil {
			return nil, err
		}
		return &Not{Child: child}, nil
	}
	return p.parseBase()
}

func (p *Parser) parseBase() (Node, error) {
	tok := p.current()
	switch tok.Kind {
	case TokLParen:
		p.advance()
		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.current().Kind != TokRParen {
			return nil, ierrors.SyntaxError(p.current().Kind.String())
		}
		p.advance()
		return node, nil
	case TokTerm:
		p.advance()
		value := tok.Value
		if p.normalizer != nil {
			value = p.normalizer.normalize(tok.Value)
		}
		return &Term{Value: value}, nil
	default:
		return nil, ierrors.SyntaxError(tok.Kind.String())
	}
}
