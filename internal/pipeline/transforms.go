package pipeline

import (
	"bufio"
	"io"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/conduit-lang/irsearch/internal/token"
)

// TokenFilter drops any token whose kind is in the given set.
type TokenFilter struct {
	kinds map[token.Kind]struct{}
}

// NewTokenFilter builds a TokenFilter for the given kinds.
func NewTokenFilter(kinds ...token.Kind) *TokenFilter {
	set := make(map[token.Kind]struct{}, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	return &TokenFilter{kinds: set}
}

func (f *TokenFilter) Apply(tok token.Token, _ string) token.Token {
	if _, drop := f.kinds[tok.Kind]; drop {
		tok.ProcessedForm = ""
	}
	return tok
}

// StopWords blanks the processed form of any token matching a member
// of the stopword set.
type StopWords struct {
	set map[string]struct{}
}

// NewStopWords builds a StopWords transform from an explicit set.
func NewStopWords(words map[string]struct{}) *StopWords {
	return &StopWords{set: words}
}

// LoadStopWords reads one stopword per line from r (UTF-8, no
// comments) and builds a StopWords transform.
func LoadStopWords(r io.Reader) (*StopWords, error) {
	set := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		set[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewStopWords(set), nil
}

func (s *StopWords) Apply(tok token.Token, _ string) token.Token {
	if _, stop := s.set[tok.ProcessedForm]; stop {
		tok.ProcessedForm = ""
	}
	return tok
}

// Lowercase locale-insensitively lowercases the processed form.
type Lowercase struct{}

func NewLowercase() *Lowercase { return &Lowercase{} }

func (Lowercase) Apply(tok token.Token, _ string) token.Token {
	tok.ProcessedForm = strings.ToLower(tok.ProcessedForm)
	return tok
}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// HtmlStrip extracts visible text from HTML fragments embedded in a
// token. It is idempotent: running it twice on already-stripped text
// is a no-op.
type HtmlStrip struct{}

func NewHtmlStrip() *HtmlStrip { return &HtmlStrip{} }

func (HtmlStrip) Apply(tok token.Token, _ string) token.Token {
	tok.ProcessedForm = strings.TrimSpace(htmlTagPattern.ReplaceAllString(tok.ProcessedForm, ""))
	return tok
}

// WhitespaceStrip removes interior spaces and trims both ends.
type WhitespaceStrip struct{}

func NewWhitespaceStrip() *WhitespaceStrip { return &WhitespaceStrip{} }

func (WhitespaceStrip) Apply(tok token.Token, _ string) token.Token {
	tok.ProcessedForm = strings.ReplaceAll(strings.TrimSpace(tok.ProcessedForm), " ", "")
	return tok
}

// Number rewrites NUMBER-kind tokens to the canonical form. The
// reference implementation had two competing conventions ("[NUM]" from
// an older preprocessor, "[num]" emitted directly by the newer
// tokeniser); spec.md §9 resolves this by standardising on the
// lowercase form, so this transform is a no-op when the tokeniser
// already canonicalised the token and only rewrites forms that
// weren't produced by lexer.Regex (e.g. a custom/legacy tokeniser that
// still emits raw digits with Kind == token.Number).
type Number struct{}

func NewNumber() *Number { return &Number{} }

func (Number) Apply(tok token.Token, _ string) token.Token {
	if tok.Kind == token.Number {
		tok.ProcessedForm = "[num]"
	}
	return tok
}

// TokenLength drops tokens whose processed form is shorter than n
// runes.
type TokenLength struct {
	Min int
}

func NewTokenLength(n int) *TokenLength { return &TokenLength{Min: n} }

func (t *TokenLength) Apply(tok token.Token, _ string) token.Token {
	if len([]rune(tok.ProcessedForm)) < t.Min {
		tok.ProcessedForm = ""
	}
	return tok
}

// unidecodeTransformer ASCII-folds diacritics via Unicode NFD
// decomposition followed by combining-mark removal. This is the
// idiomatic Go substitute for the reference implementation's
// `unidecode` dependency: the same golang.org/x/text primitives are
// used for diacritic stripping elsewhere in the example corpus.
var unidecodeTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Unidecode ASCII-folds diacritics out of the processed form.
type Unidecode struct{}

func NewUnidecode() *Unidecode { return &Unidecode{} }

func (Unidecode) Apply(tok token.Token, _ string) token.Token {
	folded, _, err := transform.String(unidecodeTransformer, tok.ProcessedForm)
	if err == nil {
		tok.ProcessedForm = folded
	}
	return tok
}
