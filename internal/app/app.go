package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"TomatoScanner/internal/config"
	"TomatoScanner/internal/domain"
	"TomatoScanner/internal/infrastructure/nlp"
	"TomatoScanner/internal/infrastructure/parser"
	"TomatoScanner/internal/infrastructure/report"
	"TomatoScanner/internal/logging"
	"TomatoScanner/internal/scanner"
	"TomatoScanner/internal/usecase"
)

// Application wires configs to use cases and runs the pipeline once.
type Application struct {
	cfg    config.Config
	client *http.Client
	source *parser.StrategySource
	out    io.Writer
	logger *slog.Logger
}

// New builds a runnable application instance; out receives the report (stdout when nil).
func New(cfg config.Config, baseLogger *slog.Logger, out io.Writer) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}
	if out == nil {
		out = os.Stdout
	}

	client := &http.Client{Timeout: cfg.Source.Timeout()}

	registry := scanner.NewRegistry()
	registry.Register(parser.NewPageScanner(client, cfg.Source.UserAgent, baseLogger.With("component", "scanner.goquery")))
	registry.Register(parser.NewCollyScanner(cfg.Source.UserAgent, cfg.Source.Timeout(), baseLogger.With("component", "scanner.colly")))

	source := parser.NewStrategySource(parser.StrategySourceDeps{
		Registry:  registry,
		Source:    cfg.Source,
		Selectors: cfg.Selectors,
		Extractor: cfg.Extractor,
		Robots:    parser.NewRobotsChecker(client, cfg.Source.UserAgent),
		Logger:    baseLogger.With("component", "source"),
	})

	return &Application{
		cfg:    cfg,
		client: client,
		source: source,
		out:    out,
		logger: baseLogger,
	}
}

// Run loads the linguistic resources and executes the pipeline a single time.
func (a *Application) Run(ctx context.Context) ([]domain.CleanedRecord, error) {
	resources, err := nlp.Load(ctx, a.cfg.NLP, a.client, a.logger.With("component", "nlp"))
	if err != nil {
		return nil, fmt.Errorf("load linguistic resources: %w", err)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:     a.source,
		Normalizer: usecase.NewNormalizer(resources.Tokenizer, resources.Stopwords),
		Annotator:  usecase.NewAnnotator(resources.Tagger, resources.Lemmatizer),
		Transformer: usecase.NewTransformer(usecase.Classification{
			Threshold:   a.cfg.Classification.Threshold,
			FreshLabel:  a.cfg.Classification.FreshLabel,
			RottenLabel: a.cfg.Classification.RottenLabel,
		}),
		Reporter: report.NewPrinter(a.out, a.cfg.Report.Table),
		Logger:   a.logger.With("component", "pipeline"),
	})

	return pipeline.Run(ctx)
}
