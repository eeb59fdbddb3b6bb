package usecase

import (
	"errors"
	"testing"

	"TomatoScanner/internal/domain"
)

func cleanedRecord(score, audience, title, date string) domain.CleanedRecord {
	return domain.CleanedRecord{RawRecord: domain.RawRecord{
		Score:         score,
		AudienceScore: audience,
		Title:         title,
		Date:          date,
	}}
}

func TestClassifyByScoreBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score string
		want  string
	}{
		{score: "60", want: "Fresh"},
		{score: "59", want: "Rotten"},
		{score: "0", want: "Rotten"},
		{score: "100", want: "Fresh"},
		{score: " 61 ", want: "Fresh"},
	}

	tr := NewTransformer(DefaultClassification())
	for _, tt := range tests {
		t.Run(tt.score, func(t *testing.T) {
			records := []domain.CleanedRecord{cleanedRecord(tt.score, "50", "x", "")}
			if err := tr.ClassifyByScore(records); err != nil {
				t.Fatalf("ClassifyByScore error: %v", err)
			}
			if records[0].Tag != tt.want {
				t.Fatalf("score %s tagged %s, want %s", tt.score, records[0].Tag, tt.want)
			}
		})
	}
}

func TestClassifyByScoreCustomLabels(t *testing.T) {
	t.Parallel()

	tr := NewTransformer(Classification{Threshold: 75, FreshLabel: "Certified"})
	records := []domain.CleanedRecord{
		cleanedRecord("75", "1", "", ""),
		cleanedRecord("74", "1", "", ""),
	}
	if err := tr.ClassifyByScore(records); err != nil {
		t.Fatalf("ClassifyByScore error: %v", err)
	}
	if records[0].Tag != "Certified" || records[1].Tag != "Rotten" {
		t.Fatalf("unexpected tags: %s, %s", records[0].Tag, records[1].Tag)
	}
}

func TestClassifyByScoreInvalid(t *testing.T) {
	t.Parallel()

	tr := NewTransformer(DefaultClassification())
	records := []domain.CleanedRecord{
		cleanedRecord("80", "1", "", ""),
		cleanedRecord("", "1", "", ""),
	}

	err := tr.ClassifyByScore(records)
	if !errors.Is(err, ErrInvalidScore) {
		t.Fatalf("expected ErrInvalidScore, got %v", err)
	}
}

func TestTitleCaseIdempotent(t *testing.T) {
	t.Parallel()

	tr := NewTransformer(DefaultClassification())
	records := []domain.CleanedRecord{
		cleanedRecord("1", "1", "great escape", ""),
		cleanedRecord("1", "1", "", ""),
		cleanedRecord("1", "1", "dune part", ""),
	}

	tr.TitleCase(records)
	once := []string{records[0].Title, records[1].Title, records[2].Title}
	tr.TitleCase(records)

	want := []string{"Great Escape", "", "Dune Part"}
	for i := range want {
		if once[i] != want[i] {
			t.Fatalf("title %d = %q, want %q", i, once[i], want[i])
		}
		if records[i].Title != once[i] {
			t.Fatalf("title case not idempotent: %q then %q", once[i], records[i].Title)
		}
	}
}

func TestCoerceScores(t *testing.T) {
	t.Parallel()

	tr := NewTransformer(DefaultClassification())
	records := []domain.CleanedRecord{cleanedRecord("85", "90", "", "")}

	if err := tr.CoerceScores(records); err != nil {
		t.Fatalf("CoerceScores error: %v", err)
	}
	if !records[0].Coerced() {
		t.Fatalf("expected record to be coerced")
	}
	if records[0].Scores.Critic != 85 || records[0].Scores.Audience != 90 {
		t.Fatalf("unexpected scores: %+v", records[0].Scores)
	}
}

func TestCoerceScoresInvalid(t *testing.T) {
	t.Parallel()

	tr := NewTransformer(DefaultClassification())

	tests := []struct {
		name    string
		records []domain.CleanedRecord
	}{
		{name: "critic", records: []domain.CleanedRecord{cleanedRecord("eighty", "90", "", "")}},
		{name: "audience", records: []domain.CleanedRecord{cleanedRecord("80", "9O", "", "")}},
		{name: "decimal", records: []domain.CleanedRecord{cleanedRecord("80.5", "90", "", "")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tr.CoerceScores(tt.records)
			if !errors.Is(err, ErrInvalidScore) {
				t.Fatalf("expected ErrInvalidScore, got %v", err)
			}
			if tt.records[0].Coerced() {
				t.Fatalf("failed record must not be marked coerced")
			}
		})
	}
}

func TestReformatDates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "Jan 5, 2024", want: "2024.1.5"},
		{in: "Dec 31, 1999", want: "1999.12.31"},
		{in: "Jul 04, 2023", want: "2023.7.4"},
		{in: "Streaming Mar 1, 2024", want: "2024.3.1"},
		{in: "2024-01-05", want: "2024-01-05"},
		{in: "Foo 5, 2024", want: "Foo 5, 2024"},
		{in: "JAN 5, 2024", want: "JAN 5, 2024"},
		{in: "", want: ""},
	}

	tr := NewTransformer(DefaultClassification())
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			records := []domain.CleanedRecord{cleanedRecord("1", "1", "", tt.in)}
			tr.ReformatDates(records)
			if records[0].Date != tt.want {
				t.Fatalf("ReformatDates(%q) = %q, want %q", tt.in, records[0].Date, tt.want)
			}
		})
	}
}
