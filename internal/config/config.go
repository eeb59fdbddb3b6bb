package config

import (
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "TOMATO_SCANNER_CONFIG"
	sourceURLEnv      = "TOMATO_SOURCE_URL"
	scannerEnv        = "TOMATO_SCANNER"
	logLevelEnv       = "TOMATO_LOG_LEVEL"
	stopwordsPathEnv  = "TOMATO_STOPWORDS_PATH"
	defaultURL        = "https://www.rottentomatoes.com/browse/movies_at_home/sort:popular"
	defaultUserAgent  = "TomatoScanner/1.0"
	defaultTimeoutSec = 20
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging        LoggingConfig        `yaml:"logging"`
	Source         SourceConfig         `yaml:"source"`
	Selectors      SelectorConfig       `yaml:"selectors"`
	Extractor      ExtractorConfig      `yaml:"extractor"`
	NLP            NLPConfig            `yaml:"nlp"`
	Classification ClassificationConfig `yaml:"classification"`
	Report         ReportConfig         `yaml:"report"`
}

// LoggingConfig sets the slog level (debug, info, warn, error).
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// SourceConfig describes the single listing page to scan and the strategy used.
type SourceConfig struct {
	Name           string            `yaml:"name"`
	Scanner        string            `yaml:"scanner"`
	URL            string            `yaml:"url"`
	UserAgent      string            `yaml:"userAgent"`
	TimeoutSeconds int               `yaml:"timeoutSeconds"`
	RespectRobots  bool              `yaml:"respectRobots"`
	Options        map[string]string `yaml:"options"`
}

// Timeout converts TimeoutSeconds into a duration; zero disables the client timeout.
func (s SourceConfig) Timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// SelectorConfig lists the CSS selectors and attributes of the three element groups.
type SelectorConfig struct {
	Score        string `yaml:"score"`
	CriticAttr   string `yaml:"criticAttr"`
	AudienceAttr string `yaml:"audienceAttr"`
	Title        string `yaml:"title"`
	Date         string `yaml:"date"`
}

// ExtractorConfig controls how misaligned element groups are handled.
type ExtractorConfig struct {
	Strict bool `yaml:"strict"`
}

// NLPConfig points at the linguistic resources.
type NLPConfig struct {
	StopwordsPath  string   `yaml:"stopwordsPath"`
	StopwordsURL   string   `yaml:"stopwordsUrl"`
	ExtraStopwords []string `yaml:"extraStopwords"`
}

// ClassificationConfig defines the critic-score threshold and its labels.
type ClassificationConfig struct {
	Threshold   int    `yaml:"threshold"`
	FreshLabel  string `yaml:"freshLabel"`
	RottenLabel string `yaml:"rottenLabel"`
}

// ReportConfig toggles the aligned table printed after the last stage.
type ReportConfig struct {
	Table bool `yaml:"table"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			fileCfg, err := Parse(raw)
			if err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = fileCfg
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.fillBlanks()

	return cfg
}

// Parse decodes YAML on top of the defaults, so absent keys keep their default value.
func Parse(raw []byte) (Config, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	cfg.fillBlanks()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(sourceURLEnv); v != "" {
		c.Source.URL = v
	}

	if v := os.Getenv(scannerEnv); v != "" {
		c.Source.Scanner = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(stopwordsPathEnv); v != "" {
		c.NLP.StopwordsPath = v
	}
}

// fillBlanks restores defaults for values explicitly emptied in the file.
func (c *Config) fillBlanks() {
	def := defaultConfig()

	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = def.Logging.Level
	}

	if c.Source.Name == "" {
		c.Source.Name = def.Source.Name
	}
	if c.Source.Scanner == "" {
		c.Source.Scanner = def.Source.Scanner
	}
	if c.Source.URL == "" {
		c.Source.URL = def.Source.URL
	}
	if c.Source.UserAgent == "" {
		c.Source.UserAgent = def.Source.UserAgent
	}

	if c.Selectors.Score == "" {
		c.Selectors.Score = def.Selectors.Score
	}
	if c.Selectors.CriticAttr == "" {
		c.Selectors.CriticAttr = def.Selectors.CriticAttr
	}
	if c.Selectors.AudienceAttr == "" {
		c.Selectors.AudienceAttr = def.Selectors.AudienceAttr
	}
	if c.Selectors.Title == "" {
		c.Selectors.Title = def.Selectors.Title
	}
	if c.Selectors.Date == "" {
		c.Selectors.Date = def.Selectors.Date
	}

	if c.Classification.FreshLabel == "" {
		c.Classification.FreshLabel = def.Classification.FreshLabel
	}
	if c.Classification.RottenLabel == "" {
		c.Classification.RottenLabel = def.Classification.RottenLabel
	}
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Source: SourceConfig{
			Name:           "rottentomatoes",
			Scanner:        "goquery",
			URL:            defaultURL,
			UserAgent:      defaultUserAgent,
			TimeoutSeconds: defaultTimeoutSec,
		},
		Selectors: SelectorConfig{
			Score:        "score-pairs-deprecated",
			CriticAttr:   "criticsscore",
			AudienceAttr: "audiencescore",
			Title:        `[data-qa="discovery-media-list-item-title"]`,
			Date:         `[data-qa="discovery-media-list-item-start-date"]`,
		},
		Classification: ClassificationConfig{
			Threshold:   60,
			FreshLabel:  "Fresh",
			RottenLabel: "Rotten",
		},
		Report: ReportConfig{Table: true},
	}
}
