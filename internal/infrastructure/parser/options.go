package parser

import (
	"fmt"
	"strconv"
)

// Option keys understood by the scanners under source.options.
const (
	optionMaxBodySize = "maxBodySize"
	optionCacheDir    = "cacheDir"
)

// scanOptions is the typed form of scanner.Request.Options.
type scanOptions struct {
	// MaxBodySize caps the bytes read from the page; zero keeps the strategy default.
	MaxBodySize int
	// CacheDir enables colly's on-disk response cache.
	CacheDir string
}

func parseScanOptions(raw map[string]string) (scanOptions, error) {
	var opts scanOptions

	if v, ok := raw[optionMaxBodySize]; ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return scanOptions{}, fmt.Errorf("option %s: %q is not a non-negative integer", optionMaxBodySize, v)
		}
		opts.MaxBodySize = n
	}
	opts.CacheDir = raw[optionCacheDir]

	return opts, nil
}
