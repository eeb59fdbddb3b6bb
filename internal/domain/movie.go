package domain

import (
	"fmt"
	"strings"
)

// RawRecord is a single movie entry as extracted from the listing page.
// Scores stay string-encoded until the transformer coerces them.
type RawRecord struct {
	Score         string
	AudienceScore string
	Title         string
	Date          string
}

// Default classification labels.
const (
	TagFresh  = "Fresh"
	TagRotten = "Rotten"
)

// Scores holds the integer form of both score fields once coerced.
type Scores struct {
	Critic   int
	Audience int
}

// CleanedRecord is the final output entity, mutated in place by every transformer pass.
type CleanedRecord struct {
	RawRecord
	Tag    string
	Scores *Scores
}

// Coerced reports whether the numeric coercion pass already ran.
func (r CleanedRecord) Coerced() bool {
	return r.Scores != nil
}

func (r CleanedRecord) String() string {
	var b strings.Builder
	b.WriteString("{")
	if r.Coerced() {
		fmt.Fprintf(&b, "score: %d, audience_score: %d", r.Scores.Critic, r.Scores.Audience)
	} else {
		fmt.Fprintf(&b, "score: %q, audience_score: %q", r.Score, r.AudienceScore)
	}
	fmt.Fprintf(&b, ", title: %q, date: %q", r.Title, r.Date)
	if r.Tag != "" {
		fmt.Fprintf(&b, ", tag: %q", r.Tag)
	}
	b.WriteString("}")
	return b.String()
}

func (r RawRecord) String() string {
	return fmt.Sprintf("{score: %q, audience_score: %q, title: %q, date: %q}",
		r.Score, r.AudienceScore, r.Title, r.Date)
}

// TokenSequence is the lowercase, pre-filter token list of one title.
type TokenSequence []string

// TaggedToken pairs a token with its part-of-speech label.
type TaggedToken struct {
	Token string
	Tag   string
}

func (t TaggedToken) String() string {
	return fmt.Sprintf("(%s, %s)", t.Token, t.Tag)
}

// LemmatizedSequence holds the lemma of every token of a TokenSequence, in order.
type LemmatizedSequence []string
