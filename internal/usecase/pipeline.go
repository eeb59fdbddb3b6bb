package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"TomatoScanner/internal/domain"
	"TomatoScanner/internal/ports"
)

// Snapshot labels, printed in this order.
const (
	LabelOriginal   = "original data"
	LabelTokenized  = "tokenized titles"
	LabelCleaned    = "cleaned data"
	LabelTagged     = "pos-tagged titles"
	LabelLemmatized = "lemmatized titles"
	LabelScoreTag   = "score tagging"
	LabelTitleCase  = "title case"
	LabelCoerced    = "type coercion"
	LabelDates      = "date reformatting"
)

// PipelineDeps wires the stages of the movie-listing workflow.
type PipelineDeps struct {
	Source      ports.RecordSource
	Normalizer  *Normalizer
	Annotator   *Annotator
	Transformer *Transformer
	Reporter    ports.Reporter
	Logger      *slog.Logger
}

// Pipeline sequences fetch, normalization, annotation and transformation.
type Pipeline struct {
	source      ports.RecordSource
	normalizer  *Normalizer
	annotator   *Annotator
	transformer *Transformer
	reporter    ports.Reporter
	logger      *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:      deps.Source,
		normalizer:  deps.Normalizer,
		annotator:   deps.Annotator,
		transformer: deps.Transformer,
		reporter:    deps.Reporter,
		logger:      deps.Logger,
	}
}

// Run fetches the listing once and processes it.
func (p *Pipeline) Run(ctx context.Context) ([]domain.CleanedRecord, error) {
	if p.source == nil {
		return nil, fmt.Errorf("record source is not configured")
	}

	records, err := p.source.FetchRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch records: %w", err)
	}
	if len(records) == 0 {
		p.warn("no records extracted")
	}

	return p.Process(records)
}

// Process runs every stage over already extracted records and reports each snapshot.
// Any error aborts the whole run; there is no per-record recovery.
func (p *Pipeline) Process(records []domain.RawRecord) ([]domain.CleanedRecord, error) {
	if p.normalizer == nil || p.transformer == nil {
		return nil, fmt.Errorf("normalizer and transformer are required")
	}

	if err := p.report(LabelOriginal, records); err != nil {
		return nil, err
	}

	cleaned, sequences := p.normalizer.Normalize(records)
	if err := p.report(LabelTokenized, sequences); err != nil {
		return nil, err
	}
	if err := p.report(LabelCleaned, cleaned); err != nil {
		return nil, err
	}

	if p.annotator != nil {
		tagged, err := p.annotator.Tag(sequences)
		if err != nil {
			return nil, fmt.Errorf("annotate: %w", err)
		}
		if err := p.report(LabelTagged, tagged); err != nil {
			return nil, err
		}
		if err := p.report(LabelLemmatized, p.annotator.Lemmatize(sequences)); err != nil {
			return nil, err
		}
	}

	if err := p.transformer.ClassifyByScore(cleaned); err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}
	if err := p.report(LabelScoreTag, cleaned); err != nil {
		return nil, err
	}

	p.transformer.TitleCase(cleaned)
	if err := p.report(LabelTitleCase, cleaned); err != nil {
		return nil, err
	}

	if err := p.transformer.CoerceScores(cleaned); err != nil {
		return nil, fmt.Errorf("coerce scores: %w", err)
	}
	if err := p.report(LabelCoerced, cleaned); err != nil {
		return nil, err
	}

	p.transformer.ReformatDates(cleaned)
	if err := p.report(LabelDates, cleaned); err != nil {
		return nil, err
	}

	if p.reporter != nil {
		if err := p.reporter.Table(cleaned); err != nil {
			return nil, fmt.Errorf("report table: %w", err)
		}
	}

	p.debug("pipeline done", "records", len(cleaned))
	return cleaned, nil
}

func (p *Pipeline) report(label string, value any) error {
	if p.reporter == nil {
		return nil
	}
	if err := p.reporter.Snapshot(label, value); err != nil {
		return fmt.Errorf("report %s: %w", label, err)
	}
	return nil
}

func (p *Pipeline) debug(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
