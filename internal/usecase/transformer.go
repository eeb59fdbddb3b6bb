package usecase

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"TomatoScanner/internal/domain"
)

// ErrInvalidScore is returned when a score field is not an integer string.
var ErrInvalidScore = errors.New("score is not an integer")

var monthNumbers = map[string]int{
	"Jan": 1, "Feb": 2, "Mar": 3,
	"Apr": 4, "May": 5, "Jun": 6,
	"Jul": 7, "Aug": 8, "Sep": 9,
	"Oct": 10, "Nov": 11, "Dec": 12,
}

// Classification maps critic scores to labels; scores >= Threshold are fresh.
type Classification struct {
	Threshold   int
	FreshLabel  string
	RottenLabel string
}

// DefaultClassification is the 60-point Fresh/Rotten split.
func DefaultClassification() Classification {
	return Classification{Threshold: 60, FreshLabel: domain.TagFresh, RottenLabel: domain.TagRotten}
}

// Transformer holds the record passes. Each pass mutates the whole slice in place
// and assumes the passes before it have already run.
type Transformer struct {
	classification Classification
	datePattern    *regexp.Regexp
}

// NewTransformer creates a transformer for the given classification.
func NewTransformer(classification Classification) *Transformer {
	if classification.FreshLabel == "" {
		classification.FreshLabel = domain.TagFresh
	}
	if classification.RottenLabel == "" {
		classification.RottenLabel = domain.TagRotten
	}
	return &Transformer{
		classification: classification,
		datePattern:    regexp.MustCompile(`(\w{3}) (\d{1,2}), (\d{4})`),
	}
}

// ClassifyByScore sets the tag of every record from its critic score.
func (t *Transformer) ClassifyByScore(records []domain.CleanedRecord) error {
	for i := range records {
		score, err := parseScore("score", records[i].Score)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if score >= t.classification.Threshold {
			records[i].Tag = t.classification.FreshLabel
		} else {
			records[i].Tag = t.classification.RottenLabel
		}
	}
	return nil
}

// TitleCase capitalizes the first letter of every word of every title.
func (t *Transformer) TitleCase(records []domain.CleanedRecord) {
	caser := cases.Title(language.English)
	for i := range records {
		records[i].Title = caser.String(records[i].Title)
	}
}

// CoerceScores converts both score fields to integers.
func (t *Transformer) CoerceScores(records []domain.CleanedRecord) error {
	for i := range records {
		critic, err := parseScore("score", records[i].Score)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		audience, err := parseScore("audience_score", records[i].AudienceScore)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		records[i].Scores = &domain.Scores{Critic: critic, Audience: audience}
	}
	return nil
}

// ReformatDates rewrites "Jan 5, 2024" style dates to "2024.1.5".
// Dates that do not match, or carry an unknown month, are left untouched.
func (t *Transformer) ReformatDates(records []domain.CleanedRecord) {
	for i := range records {
		if date, ok := t.reformatDate(records[i].Date); ok {
			records[i].Date = date
		}
	}
}

func (t *Transformer) reformatDate(value string) (string, bool) {
	match := t.datePattern.FindStringSubmatch(value)
	if match == nil {
		return "", false
	}

	month, ok := monthNumbers[match[1]]
	if !ok {
		return "", false
	}

	// Both groups are digit-only by the pattern.
	day, _ := strconv.Atoi(match[2])
	year, _ := strconv.Atoi(match[3])

	return fmt.Sprintf("%d.%d.%d", year, month, day), true
}

func parseScore(field, value string) (int, error) {
	score, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidScore, field, value)
	}
	return score, nil
}
