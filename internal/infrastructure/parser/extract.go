package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"TomatoScanner/internal/domain"
	"TomatoScanner/internal/scanner"
)

// ErrMisalignedGroups is returned in strict mode when the element groups differ in length.
var ErrMisalignedGroups = errors.New("score, title and date groups are misaligned")

// GroupCounts reports how many elements each selector matched.
type GroupCounts struct {
	Scores int
	Titles int
	Dates  int
}

// Aligned is true when all three groups have the same length.
func (g GroupCounts) Aligned() bool {
	return g.Scores == g.Titles && g.Titles == g.Dates
}

// Min is the number of records that can be zipped from the groups.
func (g GroupCounts) Min() int {
	return min(g.Scores, g.Titles, g.Dates)
}

// ExtractRecords selects the three element groups below root and zips them positionally.
// Without strict mode the result is truncated to the shortest group.
func ExtractRecords(root *goquery.Selection, sel scanner.Selectors, strict bool) ([]domain.RawRecord, GroupCounts, error) {
	scores := root.Find(sel.Score)
	titles := root.Find(sel.Title)
	dates := root.Find(sel.Date)

	counts := GroupCounts{
		Scores: scores.Length(),
		Titles: titles.Length(),
		Dates:  dates.Length(),
	}

	if strict && !counts.Aligned() {
		return nil, counts, fmt.Errorf("%w: scores=%d titles=%d dates=%d",
			ErrMisalignedGroups, counts.Scores, counts.Titles, counts.Dates)
	}

	n := counts.Min()
	records := make([]domain.RawRecord, 0, n)
	for i := 0; i < n; i++ {
		score := scores.Eq(i)
		critic, _ := score.Attr(sel.CriticAttr)
		audience, _ := score.Attr(sel.AudienceAttr)

		records = append(records, domain.RawRecord{
			Score:         critic,
			AudienceScore: audience,
			Title:         strings.TrimSpace(titles.Eq(i).Text()),
			Date:          strings.TrimSpace(dates.Eq(i).Text()),
		})
	}

	return records, counts, nil
}
