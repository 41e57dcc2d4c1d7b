// Package nlp turns raw phrases into the normalized stems shared by training and inference.
package nlp

import (
	"strings"
	"unicode"

	"github.com/blevesearch/segment"
	"github.com/blugelabs/bluge/analysis"
	"github.com/blugelabs/bluge/analysis/token"
)

// IgnoredTokens are dropped while building the vocabulary.
var IgnoredTokens = []string{"?", "!", ".", ","}

// INormalizer maps a phrase to its ordered sequence of stems.
type INormalizer interface {
	Normalize(text string) []string
}

// Normalizer segments text on Unicode word boundaries, lower-cases every
// token and reduces words to their Porter stem. Punctuation is kept as
// standalone tokens, whitespace is discarded.
type Normalizer struct {
	analyzer *analysis.Analyzer
}

func NewNormalizer() Normalizer {
	return Normalizer{analyzer: &analysis.Analyzer{
		Tokenizer: wordTokenizer{},
		TokenFilters: []analysis.TokenFilter{
			token.NewLowerCaseFilter(),
			token.NewPorterStemmer(),
		},
	}}
}

// Normalize replaces invalid UTF-8 with a space first: the segmenter stops at
// the first bad byte and would lose every word after it.
func (n Normalizer) Normalize(text string) []string {
	input := []byte(strings.ToValidUTF8(text, " "))
	var stems []string
	for _, tok := range n.analyzer.Analyze(input) {
		stems = append(stems, string(tok.Term))
	}
	return stems
}

// wordTokenizer emits every non-blank word boundary segment. Unlike bluge's
// unicode tokenizer it keeps punctuation, and only letter tokens are left open
// to stemming.
type wordTokenizer struct{}

func (wordTokenizer) Tokenize(input []byte) analysis.TokenStream {
	var stream analysis.TokenStream
	segmenter := segment.NewWordSegmenterDirect(input)
	start := 0
	for segmenter.Segment() {
		term := segmenter.Bytes()
		end := start + len(term)
		if strings.TrimFunc(string(term), unicode.IsSpace) != "" {
			stream = append(stream, &analysis.Token{
				Term:         term,
				Start:        start,
				End:          end,
				PositionIncr: 1,
				KeyWord:      segmenter.Type() != segment.Letter,
			})
		}
		start = end
	}
	return stream
}
