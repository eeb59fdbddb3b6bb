package parser

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"TomatoScanner/internal/config"
	"TomatoScanner/internal/scanner"
)

func listingServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/browse", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "test-agent" {
			http.Error(w, "unexpected agent", http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>" + listingHTML + "</body></html>"))
	})
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("User-agent: *\nDisallow: /private\n"))
	})
	mux.HandleFunc("/private", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html></html>"))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestPageScannerScan(t *testing.T) {
	t.Parallel()

	server := listingServer(t)
	sc := NewPageScanner(server.Client(), "test-agent", nil)

	records, err := sc.Scan(context.Background(), scanner.Request{
		URL:       server.URL + "/browse",
		Selectors: testSelectors,
	})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Title != "The Great Escape" || records[0].Score != "75" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
}

func TestPageScannerScanHTTPError(t *testing.T) {
	t.Parallel()

	server := listingServer(t)
	sc := NewPageScanner(server.Client(), "test-agent", nil)

	_, err := sc.Scan(context.Background(), scanner.Request{
		URL:       server.URL + "/missing",
		Selectors: testSelectors,
	})
	if err == nil {
		t.Fatalf("expected error for 404 page")
	}
}

func TestCollyScannerScan(t *testing.T) {
	t.Parallel()

	server := listingServer(t)
	sc := NewCollyScanner("test-agent", 5*time.Second, nil)

	records, err := sc.Scan(context.Background(), scanner.Request{
		URL:       server.URL + "/browse",
		Selectors: testSelectors,
	})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1].Title != "Dune: Part Two" || records[1].AudienceScore != "88" {
		t.Fatalf("unexpected second record: %+v", records[1])
	}
}

func TestCollyScannerScanHTTPError(t *testing.T) {
	t.Parallel()

	server := listingServer(t)
	sc := NewCollyScanner("test-agent", 5*time.Second, nil)

	if _, err := sc.Scan(context.Background(), scanner.Request{URL: server.URL + "/missing"}); err == nil {
		t.Fatalf("expected error for 404 page")
	}
}

func TestRobotsCheckerCheck(t *testing.T) {
	t.Parallel()

	server := listingServer(t)
	checker := NewRobotsChecker(server.Client(), "test-agent")

	if err := checker.Check(context.Background(), server.URL+"/browse"); err != nil {
		t.Fatalf("expected /browse to be allowed: %v", err)
	}

	err := checker.Check(context.Background(), server.URL+"/private")
	if !errors.Is(err, ErrDisallowedByRobots) {
		t.Fatalf("expected ErrDisallowedByRobots, got %v", err)
	}
}

func TestStrategySourceFetchRecords(t *testing.T) {
	t.Parallel()

	server := listingServer(t)
	selectors := config.SelectorConfig{
		Score:        testSelectors.Score,
		CriticAttr:   testSelectors.CriticAttr,
		AudienceAttr: testSelectors.AudienceAttr,
		Title:        testSelectors.Title,
		Date:         testSelectors.Date,
	}

	registry := scanner.NewRegistry()
	registry.Register(NewPageScanner(server.Client(), "test-agent", nil))

	source := NewStrategySource(StrategySourceDeps{
		Registry: registry,
		Source: config.SourceConfig{
			Name:          "fixture",
			Scanner:       "goquery",
			URL:           server.URL + "/browse",
			RespectRobots: true,
		},
		Selectors: selectors,
		Robots:    NewRobotsChecker(server.Client(), "test-agent"),
	})

	records, err := source.FetchRecords(context.Background())
	if err != nil {
		t.Fatalf("FetchRecords error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestStrategySourceUnknownScanner(t *testing.T) {
	t.Parallel()

	source := NewStrategySource(StrategySourceDeps{
		Registry: scanner.NewRegistry(),
		Source:   config.SourceConfig{Name: "fixture", Scanner: "selenium"},
	})

	if _, err := source.FetchRecords(context.Background()); err == nil {
		t.Fatalf("expected error for unregistered scanner")
	}
}

func TestStrategySourceRobotsDisallowed(t *testing.T) {
	t.Parallel()

	server := listingServer(t)
	registry := scanner.NewRegistry()
	registry.Register(NewPageScanner(server.Client(), "test-agent", nil))

	source := NewStrategySource(StrategySourceDeps{
		Registry: registry,
		Source: config.SourceConfig{
			Name:          "fixture",
			Scanner:       "goquery",
			URL:           server.URL + "/private",
			RespectRobots: true,
		},
		Robots: NewRobotsChecker(server.Client(), "test-agent"),
	})

	_, err := source.FetchRecords(context.Background())
	if !errors.Is(err, ErrDisallowedByRobots) {
		t.Fatalf("expected ErrDisallowedByRobots, got %v", err)
	}
}
