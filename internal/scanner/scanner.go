package scanner

import (
	"context"
	"fmt"

	"TomatoScanner/internal/domain"
)

// Selectors names the three independently selected element groups of a listing page.
type Selectors struct {
	Score        string
	CriticAttr   string
	AudienceAttr string
	Title        string
	Date         string
}

// Request carries all parameters required to execute a scan.
type Request struct {
	// SiteName labels the scanner's log lines.
	SiteName  string
	URL       string
	Selectors Selectors
	// Strict turns misaligned element groups into an error instead of truncating.
	Strict bool
	// Options holds strategy settings such as maxBodySize; unknown keys are ignored.
	Options map[string]string
}

// Scanner captures a single fetch-and-extract strategy (goquery, colly).
type Scanner interface {
	Name() string
	Scan(ctx context.Context, req Request) ([]domain.RawRecord, error)
}

// Registry keeps a mapping from scanner names to their implementations.
type Registry struct {
	scanners map[string]Scanner
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{scanners: map[string]Scanner{}}
}

// Register adds or replaces a scanner implementation.
func (r *Registry) Register(scanner Scanner) {
	if r.scanners == nil {
		r.scanners = map[string]Scanner{}
	}
	r.scanners[scanner.Name()] = scanner
}

// Resolve returns a scanner by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Scanner, error) {
	if scanner, ok := r.scanners[name]; ok {
		return scanner, nil
	}
	return nil, fmt.Errorf("scanner %s is not registered", name)
}
