package nlp

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"TomatoScanner/internal/config"
	"TomatoScanner/internal/ports"
)

//go:embed stopwords_en.txt
var englishStopwords string

// ErrNoStopwords is returned when the configured stopword source yields no words.
var ErrNoStopwords = errors.New("stopword set is empty")

// Stopwords is a read-only set of lowercase stopwords.
type Stopwords map[string]struct{}

var _ ports.StopwordSet = Stopwords(nil)

// Contains reports whether word is a stopword.
func (s Stopwords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Resources is the explicitly initialized handle to every linguistic resource.
// It is loaded once per run and never mutated afterwards.
type Resources struct {
	Stopwords  Stopwords
	Tokenizer  WordTokenizer
	Tagger     *ProseTagger
	Lemmatizer *GolemLemmatizer
}

// Load reads the stopword list and initializes the tagger and lemmatizer.
// When cfg.StopwordsPath is set and missing, it is downloaded from cfg.StopwordsURL first.
func Load(ctx context.Context, cfg config.NLPConfig, client *http.Client, logger *slog.Logger) (*Resources, error) {
	raw, err := stopwordSource(ctx, cfg, client, logger)
	if err != nil {
		return nil, err
	}

	stopwords := ParseStopwords(raw)
	for _, extra := range cfg.ExtraStopwords {
		if w := strings.ToLower(strings.TrimSpace(extra)); w != "" {
			stopwords[w] = struct{}{}
		}
	}
	if len(stopwords) == 0 {
		return nil, ErrNoStopwords
	}

	lemmatizer, err := NewGolemLemmatizer()
	if err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Debug("linguistic resources loaded", "stopwords", len(stopwords))
	}

	return &Resources{
		Stopwords:  stopwords,
		Tokenizer:  WordTokenizer{},
		Tagger:     NewProseTagger(),
		Lemmatizer: lemmatizer,
	}, nil
}

// ParseStopwords reads one word per line; blank lines and # comments are skipped.
func ParseStopwords(raw string) Stopwords {
	set := Stopwords{}
	for _, line := range strings.Split(raw, "\n") {
		word := strings.ToLower(strings.TrimSpace(line))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		set[word] = struct{}{}
	}
	return set
}

func stopwordSource(ctx context.Context, cfg config.NLPConfig, client *http.Client, logger *slog.Logger) (string, error) {
	if cfg.StopwordsPath == "" {
		return englishStopwords, nil
	}

	if _, err := os.Stat(cfg.StopwordsPath); errors.Is(err, os.ErrNotExist) && cfg.StopwordsURL != "" {
		if logger != nil {
			logger.Info("downloading stopwords", "url", cfg.StopwordsURL, "path", cfg.StopwordsPath)
		}
		if err := download(ctx, client, cfg.StopwordsURL, cfg.StopwordsPath); err != nil {
			return "", fmt.Errorf("download stopwords: %w", err)
		}
	}

	raw, err := os.ReadFile(cfg.StopwordsPath)
	if err != nil {
		return "", fmt.Errorf("read stopwords: %w", err)
	}
	return string(raw), nil
}

func download(ctx context.Context, client *http.Client, sourceURL, path string) error {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", sourceURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned %s", sourceURL, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	// A partial download must never be read back as the list.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	return os.Rename(tmp, path)
}
