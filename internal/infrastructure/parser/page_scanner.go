package parser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"TomatoScanner/internal/domain"
	"TomatoScanner/internal/scanner"
)

const defaultUserAgent = "TomatoScanner/1.0"

// PageScanner fetches the listing page over net/http and extracts records with goquery.
type PageScanner struct {
	client    *http.Client
	userAgent string
	logger    *slog.Logger
}

// NewPageScanner wires an HTTP client; a nil client gets a 20 second timeout.
func NewPageScanner(client *http.Client, userAgent string, logger *slog.Logger) *PageScanner {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &PageScanner{client: client, userAgent: userAgent, logger: logger}
}

// Name identifies the strategy inside the registry.
func (p *PageScanner) Name() string {
	return "goquery"
}

// Scan downloads req.URL once and zips the configured element groups into records.
// Only the maxBodySize option applies to this strategy.
func (p *PageScanner) Scan(ctx context.Context, req scanner.Request) ([]domain.RawRecord, error) {
	opts, err := parseScanOptions(req.Options)
	if err != nil {
		return nil, err
	}

	doc, err := p.fetchDocument(ctx, req.URL, opts.MaxBodySize)
	if err != nil {
		return nil, err
	}

	records, counts, err := ExtractRecords(doc.Selection, req.Selectors, req.Strict)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", req.URL, err)
	}
	logCounts(p.logger, req, counts)

	return records, nil
}

func (p *PageScanner) fetchDocument(ctx context.Context, pageURL string, maxBodySize int) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned %s", pageURL, resp.Status)
	}

	var body io.Reader = resp.Body
	if maxBodySize > 0 {
		body = io.LimitReader(resp.Body, int64(maxBodySize))
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

func logCounts(logger *slog.Logger, req scanner.Request, counts GroupCounts) {
	if logger == nil {
		return
	}
	if !counts.Aligned() {
		logger.Warn("element groups misaligned, truncating",
			"site", req.SiteName,
			"url", req.URL,
			"scores", counts.Scores,
			"titles", counts.Titles,
			"dates", counts.Dates,
			"records", counts.Min())
		return
	}
	logger.Debug("extracted records", "site", req.SiteName, "url", req.URL, "records", counts.Min())
}
