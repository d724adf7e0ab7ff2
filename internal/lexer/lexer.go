// Package lexer implements the tokenisers of the IR core: a
// regex-match tokeniser used against real document/query text, and a
// whitespace-split tokeniser used by tests and the spec's "word-split,
// no pipeline" scenarios.
package lexer

import (
	"regexp"

	"github.com/conduit-lang/irsearch/internal/token"
)

// Tokenizer segments raw text into a sequence of classified tokens.
type Tokenizer interface {
	Tokenize(text string) []token.Token
}

// editionWords and extensionWords are the closed sets recognised after
// a leading digit run. Carried verbatim from the reference tokeniser;
// the canonical forms they produce are "{digits}[ed]" / "{digits}[ex]".
var (
	editionPattern   = regexp.MustCompile(`(?i)^\d+(?:\.)?(?:th|nd|rd|st)?\s*(?:edition|edice|edici|vydani|vydání|vydanie|vyd\.|díl|dil|sérii|serii)\w*`)
	extensionPattern = regexp.MustCompile(`(?i)^\d+(?:\.)?(?:th|nd|rd|st)?\s*(?:rozšíření|rozsireni|rozš|rozs)\w*`)
	urlPattern       = regexp.MustCompile(`(?i)^(?:http\S+|www\S+)`)
	tagPattern       = regexp.MustCompile(`^<[^<>]*>`)
	numberPattern    = regexp.MustCompile(`^\d+(?:[.,]\d*)?`)
	wordPattern      = regexp.MustCompile(`^[\p{L}\p{N}_]{2,}`)
	punctPattern     = regexp.MustCompile(`^[^\p{L}\p{N}\s]+`)
	leadingDigits    = regexp.MustCompile(`^\d+`)
)

// Regex is the precedence-ordered, Unicode-aware, case-insensitive
// tokeniser described in spec.md §4.2. Matching is greedy
// left-to-right; at each position the first pattern to match (in
// precedence order URL > TAG > EDITION > EXTENSION > NUMBER > WORD >
// PUNCT) wins, and the scan advances past it. Runes that start no
// match (whitespace, or a single letter too short for WORD) are
// skipped without producing a token.
type Regex struct{}

// NewRegex constructs the default regex-match tokeniser.
func NewRegex() *Regex { return &Regex{} }

func (r *Regex) Tokenize(text string) []token.Token {
	runes := []rune(text)
	var out []token.Token
	i := 0
	for i < len(runes) {
		rest := string(runes[i:])
		if rest == "" {
			break
		}
		r := []rune(rest)[0]
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			i++
			continue
		}

		if loc := urlPattern.FindString(rest); loc != "" {
			out = append(out, token.New(loc, i, len([]rune(loc)), token.URL))
			i += len([]rune(loc))
			continue
		}
		if loc := tagPattern.FindString(rest); loc != "" {
			out = append(out, token.New(loc, i, len([]rune(loc)), token.Tag))
			i += len([]rune(loc))
			continue
		}
		if loc := editionPattern.FindString(rest); loc != "" {
			num := leadingDigits.FindString(loc)
			canon := num + "[ed]"
			out = append(out, token.New(canon, i, len([]rune(loc)), token.Edition))
			i += len([]rune(loc))
			continue
		}
		if loc := extensionPattern.FindString(rest); loc != "" {
			num := leadingDigits.FindString(loc)
			canon := num + "[ex]"
			out = append(out, token.New(canon, i, len([]rune(loc)), token.Extension))
			i += len([]rune(loc))
			continue
		}
		if loc := numberPattern.FindString(rest); loc != "" {
			out = append(out, token.New("[num]", i, len([]rune(loc)), token.Number))
			i += len([]rune(loc))
			continue
		}
		if loc := wordPattern.FindString(rest); loc != "" {
			out = append(out, token.New(loc, i, len([]rune(loc)), token.Word))
			i += len([]rune(loc))
			continue
		}
		if loc := punctPattern.FindString(rest); loc != "" {
			out = append(out, token.New(loc, i, len([]rune(loc)), token.Punct))
			i += len([]rune(loc))
			continue
		}
		// Single rune that matches nothing (e.g. a lone letter, which
		// is shorter than WORD's minimum of 2): skip it rather than
		// loop forever.
		i++
	}
	return out
}

// Whitespace splits text on a single delimiter string. Position is the
// running sum of prior token lengths plus delimiter width, matching
// the reference split tokeniser used by tests.
type Whitespace struct {
	Delim string
}

// NewWhitespace constructs a whitespace tokeniser that splits on delim.
func NewWhitespace(delim string) *Whitespace {
	if delim == "" {
		delim = " "
	}
	return &Whitespace{Delim: delim}
}

func (w *Whitespace) Tokenize(text string) []token.Token {
	runes := []rune(text)
	delimRunes := []rune(w.Delim)
	var out []token.Token
	position := 0
	start := 0
	i := 0
	matchAt := func(pos int) bool {
		if pos+len(delimRunes) > len(runes) {
			return false
		}
		for j, dr := range delimRunes {
			if runes[pos+j] != dr {
				return false
			}
		}
		return true
	}
	emit := func(end int) {
		word := string(runes[start:end])
		length := end - start
		out = append(out, token.New(word, position, length, token.Word))
		position += length + len(delimRunes)
	}
	for i < len(runes) {
		if matchAt(i) {
			emit(i)
			i += len(delimRunes)
			start = i
			continue
		}
		i++
	}
	emit(len(runes))
	return out
}
