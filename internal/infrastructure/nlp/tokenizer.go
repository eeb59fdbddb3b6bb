package nlp

import (
	"strings"

	"github.com/jdkato/prose/v2"

	"TomatoScanner/internal/ports"
)

// WordTokenizer splits text with prose's Treebank-style tokenizer.
// Punctuation and clitics ('s, n't) become their own tokens; hyphenated words stay whole.
type WordTokenizer struct{}

var _ ports.Tokenizer = WordTokenizer{}

// Tokenize returns the tokens of text in order.
func (WordTokenizer) Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil
	}

	var tokens []string
	for _, tok := range doc.Tokens() {
		tokens = append(tokens, tok.Text)
	}
	return tokens
}
