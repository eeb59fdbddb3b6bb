package parser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gocolly/colly"

	"TomatoScanner/internal/domain"
	"TomatoScanner/internal/scanner"
)

// CollyScanner visits the listing page with a colly collector and extracts
// records from the parsed DOM of the html element.
type CollyScanner struct {
	userAgent string
	timeout   time.Duration
	logger    *slog.Logger
}

// NewCollyScanner builds the colly strategy; a zero timeout keeps colly's default.
func NewCollyScanner(userAgent string, timeout time.Duration, logger *slog.Logger) *CollyScanner {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &CollyScanner{userAgent: userAgent, timeout: timeout, logger: logger}
}

// Name identifies the strategy inside the registry.
func (c *CollyScanner) Name() string {
	return "colly"
}

// Scan performs a single synchronous visit of req.URL.
// The maxBodySize and cacheDir options map onto the collector settings.
func (c *CollyScanner) Scan(ctx context.Context, req scanner.Request) ([]domain.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts, err := parseScanOptions(req.Options)
	if err != nil {
		return nil, err
	}

	collector := colly.NewCollector(colly.UserAgent(c.userAgent))
	if opts.MaxBodySize > 0 {
		collector.MaxBodySize = opts.MaxBodySize
	}
	if opts.CacheDir != "" {
		collector.CacheDir = opts.CacheDir
	}
	if c.timeout > 0 {
		collector.SetRequestTimeout(c.timeout)
	}

	var (
		records    []domain.RawRecord
		counts     GroupCounts
		extractErr error
		visitErr   error
	)

	collector.OnHTML("html", func(e *colly.HTMLElement) {
		records, counts, extractErr = ExtractRecords(e.DOM, req.Selectors, req.Strict)
	})
	collector.OnError(func(r *colly.Response, err error) {
		visitErr = fmt.Errorf("%s returned %d: %w", req.URL, r.StatusCode, err)
	})

	if err := collector.Visit(req.URL); err != nil {
		if visitErr != nil {
			return nil, visitErr
		}
		return nil, fmt.Errorf("visit %s: %w", req.URL, err)
	}
	collector.Wait()

	if visitErr != nil {
		return nil, visitErr
	}
	if extractErr != nil {
		return nil, fmt.Errorf("extract %s: %w", req.URL, extractErr)
	}
	logCounts(c.logger, req, counts)

	return records, nil
}
