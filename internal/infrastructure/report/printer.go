// Package report renders pipeline snapshots as human-readable text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"TomatoScanner/internal/domain"
	"TomatoScanner/internal/ports"
)

var tableHeader = []string{"#", "Title", "Date", "Score", "Audience", "Tag"}

// Printer writes labelled snapshots and an optional aligned table.
type Printer struct {
	out   io.Writer
	table bool
}

var _ ports.Reporter = (*Printer)(nil)

// NewPrinter builds a printer over out; table enables the final aligned table.
func NewPrinter(out io.Writer, table bool) *Printer {
	return &Printer{out: out, table: table}
}

// Snapshot prints "label = value" on one line.
func (p *Printer) Snapshot(label string, value any) error {
	_, err := fmt.Fprintf(p.out, "%s = %v\n", label, value)
	return err
}

// Table prints the records as a pipe table padded by display width,
// so wide (CJK) titles stay aligned.
func (p *Printer) Table(records []domain.CleanedRecord) error {
	if !p.table || len(records) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, tableHeader)
	for i, r := range records {
		score, audience := r.Score, r.AudienceScore
		if r.Coerced() {
			score = strconv.Itoa(r.Scores.Critic)
			audience = strconv.Itoa(r.Scores.Audience)
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), r.Title, r.Date, score, audience, r.Tag})
	}

	widths := make([]int, len(tableHeader))
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	var sb strings.Builder
	for i, row := range rows {
		writeRow(&sb, row, widths)
		if i == 0 {
			separator := make([]string, len(widths))
			for j, w := range widths {
				separator[j] = strings.Repeat("-", w)
			}
			writeRow(&sb, separator, widths)
		}
	}

	_, err := io.WriteString(p.out, sb.String())
	return err
}

func writeRow(sb *strings.Builder, row []string, widths []int) {
	sb.WriteString("|")
	for i, cell := range row {
		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(cell, widths[i]))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}
