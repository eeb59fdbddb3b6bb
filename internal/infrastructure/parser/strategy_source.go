package parser

import (
	"context"
	"fmt"
	"log/slog"

	"TomatoScanner/internal/config"
	"TomatoScanner/internal/domain"
	"TomatoScanner/internal/ports"
	"TomatoScanner/internal/scanner"
)

// StrategySource implements RecordSource via a registered scanner strategy.
type StrategySource struct {
	registry  *scanner.Registry
	source    config.SourceConfig
	selectors config.SelectorConfig
	strict    bool
	robots    *RobotsChecker
	logger    *slog.Logger
}

var _ ports.RecordSource = (*StrategySource)(nil)

// StrategySourceDeps groups the configuration a StrategySource reads.
type StrategySourceDeps struct {
	Registry  *scanner.Registry
	Source    config.SourceConfig
	Selectors config.SelectorConfig
	Extractor config.ExtractorConfig
	// Robots is consulted only when Source.RespectRobots is set.
	Robots *RobotsChecker
	Logger *slog.Logger
}

// NewStrategySource wires the scanner registry with the configured listing page.
func NewStrategySource(deps StrategySourceDeps) *StrategySource {
	return &StrategySource{
		registry:  deps.Registry,
		source:    deps.Source,
		selectors: deps.Selectors,
		strict:    deps.Extractor.Strict,
		robots:    deps.Robots,
		logger:    deps.Logger,
	}
}

// FetchRecords resolves the configured scanner and runs it once against the page.
func (s *StrategySource) FetchRecords(ctx context.Context) ([]domain.RawRecord, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("scanner registry is not configured")
	}

	strategy, err := s.registry.Resolve(s.source.Scanner)
	if err != nil {
		return nil, fmt.Errorf("site %s: %w", s.source.Name, err)
	}

	if s.source.RespectRobots && s.robots != nil {
		if err := s.robots.Check(ctx, s.source.URL); err != nil {
			return nil, fmt.Errorf("site %s: %w", s.source.Name, err)
		}
	}

	s.debug("scan site", "site", s.source.Name, "scanner", s.source.Scanner, "url", s.source.URL)

	records, err := strategy.Scan(ctx, scanner.Request{
		SiteName:  s.source.Name,
		URL:       s.source.URL,
		Selectors: toScannerSelectors(s.selectors),
		Strict:    s.strict,
		Options:   s.source.Options,
	})
	if err != nil {
		return nil, fmt.Errorf("scan site %s: %w", s.source.Name, err)
	}

	s.debug("site produced records", "site", s.source.Name, "count", len(records))
	return records, nil
}

func toScannerSelectors(cfg config.SelectorConfig) scanner.Selectors {
	return scanner.Selectors{
		Score:        cfg.Score,
		CriticAttr:   cfg.CriticAttr,
		AudienceAttr: cfg.AudienceAttr,
		Title:        cfg.Title,
		Date:         cfg.Date,
	}
}

func (s *StrategySource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
