package usecase

import (
	"strings"
	"unicode"

	"TomatoScanner/internal/domain"
	"TomatoScanner/internal/ports"
)

// Normalizer lowercases and tokenizes titles, then keeps only alphabetic non-stopword tokens.
type Normalizer struct {
	tokenizer ports.Tokenizer
	stopwords ports.StopwordSet
}

// NewNormalizer wires the tokenizer and stopword set loaded for this run.
func NewNormalizer(tokenizer ports.Tokenizer, stopwords ports.StopwordSet) *Normalizer {
	return &Normalizer{tokenizer: tokenizer, stopwords: stopwords}
}

// Normalize returns one cleaned record and one pre-filter token sequence per input record,
// in input order. A title whose tokens are all filtered out becomes the empty string.
func (n *Normalizer) Normalize(records []domain.RawRecord) ([]domain.CleanedRecord, []domain.TokenSequence) {
	cleaned := make([]domain.CleanedRecord, 0, len(records))
	sequences := make([]domain.TokenSequence, 0, len(records))

	for _, record := range records {
		tokens := n.tokenizer.Tokenize(strings.ToLower(record.Title))
		sequences = append(sequences, domain.TokenSequence(tokens))

		kept := make([]string, 0, len(tokens))
		for _, token := range tokens {
			if isAlpha(token) && !n.stopwords.Contains(token) {
				kept = append(kept, token)
			}
		}

		record.Title = strings.Join(kept, " ")
		cleaned = append(cleaned, domain.CleanedRecord{RawRecord: record})
	}

	return cleaned, sequences
}

func isAlpha(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
