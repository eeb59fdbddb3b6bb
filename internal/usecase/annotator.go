package usecase

import (
	"fmt"

	"TomatoScanner/internal/domain"
	"TomatoScanner/internal/ports"
)

// Annotator runs part-of-speech tagging and lemmatization over pre-filter token sequences.
// Its output is informational and never merged back into the records.
type Annotator struct {
	tagger     ports.Tagger
	lemmatizer ports.Lemmatizer
}

// NewAnnotator wires the tagging and lemmatization capabilities.
func NewAnnotator(tagger ports.Tagger, lemmatizer ports.Lemmatizer) *Annotator {
	return &Annotator{tagger: tagger, lemmatizer: lemmatizer}
}

// Tag produces one tagged sequence per token sequence, in order.
func (a *Annotator) Tag(sequences []domain.TokenSequence) ([][]domain.TaggedToken, error) {
	tagged := make([][]domain.TaggedToken, 0, len(sequences))
	for i, seq := range sequences {
		tokens, err := a.tagger.Tag(seq)
		if err != nil {
			return nil, fmt.Errorf("tag sequence %d: %w", i, err)
		}
		tagged = append(tagged, tokens)
	}
	return tagged, nil
}

// Lemmatize maps every token to its lemma without a part-of-speech hint.
func (a *Annotator) Lemmatize(sequences []domain.TokenSequence) []domain.LemmatizedSequence {
	lemmatized := make([]domain.LemmatizedSequence, 0, len(sequences))
	for _, seq := range sequences {
		lemmas := make(domain.LemmatizedSequence, 0, len(seq))
		for _, token := range seq {
			lemmas = append(lemmas, a.lemmatizer.Lemma(token))
		}
		lemmatized = append(lemmatized, lemmas)
	}
	return lemmatized
}
