package nlp

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"

	"TomatoScanner/internal/domain"
	"TomatoScanner/internal/ports"
)

// ProseTagger assigns Penn Treebank tags with prose's averaged perceptron model.
type ProseTagger struct{}

var _ ports.Tagger = (*ProseTagger)(nil)

// NewProseTagger returns a tagger backed by prose's bundled English model.
func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

// Tag labels every token of one sequence, returning exactly one pair per input token.
func (p *ProseTagger) Tag(tokens []string) ([]domain.TaggedToken, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	doc, err := prose.NewDocument(strings.Join(tokens, " "),
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("tag tokens: %w", err)
	}

	return alignTags(tokens, doc.Tokens()), nil
}

// alignTags maps prose's tokens back onto the input sequence. prose may split an
// input token further (ocean's -> ocean, 's); such a token takes the tag of its
// first piece. A token prose dropped keeps an empty tag.
func alignTags(tokens []string, tagged []prose.Token) []domain.TaggedToken {
	out := make([]domain.TaggedToken, len(tokens))
	next := 0
	for i, token := range tokens {
		out[i] = domain.TaggedToken{Token: token}

		consumed := 0
		for next < len(tagged) && consumed < len(token) {
			if consumed == 0 {
				out[i].Tag = tagged[next].Tag
			}
			consumed += len(tagged[next].Text)
			next++
		}
	}
	return out
}
