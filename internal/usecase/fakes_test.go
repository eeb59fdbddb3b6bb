package usecase

import (
	"context"
	"errors"
	"strings"

	"TomatoScanner/internal/domain"
)

// splitTokenizer separates words on spaces and peels off trailing punctuation.
type splitTokenizer struct{}

func (splitTokenizer) Tokenize(text string) []string {
	var tokens []string
	for _, field := range strings.Fields(text) {
		trimmed := strings.TrimRight(field, ":!?,.")
		if trimmed != "" {
			tokens = append(tokens, trimmed)
		}
		for _, r := range field[len(trimmed):] {
			tokens = append(tokens, string(r))
		}
	}
	return tokens
}

type stopwordSet map[string]bool

func (s stopwordSet) Contains(word string) bool { return s[word] }

var testStopwords = stopwordSet{"the": true, "of": true, "a": true, "and": true}

type lengthTagger struct{ err error }

func (l lengthTagger) Tag(tokens []string) ([]domain.TaggedToken, error) {
	if l.err != nil {
		return nil, l.err
	}
	tagged := make([]domain.TaggedToken, 0, len(tokens))
	for _, tok := range tokens {
		tag := "NN"
		if testStopwords.Contains(tok) {
			tag = "DT"
		}
		tagged = append(tagged, domain.TaggedToken{Token: tok, Tag: tag})
	}
	return tagged, nil
}

type suffixLemmatizer struct{}

func (suffixLemmatizer) Lemma(word string) string {
	if len(word) > 3 && strings.HasSuffix(word, "s") {
		return strings.TrimSuffix(word, "s")
	}
	return word
}

type staticSource struct {
	records []domain.RawRecord
	err     error
}

func (s staticSource) FetchRecords(context.Context) ([]domain.RawRecord, error) {
	return s.records, s.err
}

type snapshot struct {
	label string
	value any
}

type recordingReporter struct {
	snapshots []snapshot
	table     []domain.CleanedRecord
	failOn    string
}

func (r *recordingReporter) Snapshot(label string, value any) error {
	if label == r.failOn {
		return errors.New("writer closed")
	}
	r.snapshots = append(r.snapshots, snapshot{label: label, value: value})
	return nil
}

func (r *recordingReporter) Table(records []domain.CleanedRecord) error {
	r.table = append([]domain.CleanedRecord(nil), records...)
	return nil
}
