package ports

import (
	"context"

	"TomatoScanner/internal/domain"
)

// RecordSource pulls raw movie records from the upstream listing page.
type RecordSource interface {
	FetchRecords(ctx context.Context) ([]domain.RawRecord, error)
}

// Tokenizer splits text into word-level tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// StopwordSet answers membership for the fixed stopword list.
type StopwordSet interface {
	Contains(word string) bool
}

// Tagger labels every token of a sequence with its part of speech.
type Tagger interface {
	Tag(tokens []string) ([]domain.TaggedToken, error)
}

// Lemmatizer reduces a single word to its dictionary form.
type Lemmatizer interface {
	Lemma(word string) string
}

// Reporter renders pipeline snapshots for inspection.
type Reporter interface {
	Snapshot(label string, value any) error
	Table(records []domain.CleanedRecord) error
}
