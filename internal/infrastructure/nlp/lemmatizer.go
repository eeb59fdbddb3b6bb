package nlp

import (
	"fmt"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"

	"TomatoScanner/internal/ports"
)

// GolemLemmatizer looks words up in golem's English dictionary.
// No part of speech is passed; unknown words come back unchanged.
type GolemLemmatizer struct {
	lemmatizer *golem.Lemmatizer
}

var _ ports.Lemmatizer = (*GolemLemmatizer)(nil)

// NewGolemLemmatizer loads the English dictionary.
func NewGolemLemmatizer() (*GolemLemmatizer, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load lemmatizer dictionary: %w", err)
	}
	return &GolemLemmatizer{lemmatizer: lemmatizer}, nil
}

// Lemma returns the dictionary form of word.
func (g *GolemLemmatizer) Lemma(word string) string {
	return g.lemmatizer.Lemma(word)
}
