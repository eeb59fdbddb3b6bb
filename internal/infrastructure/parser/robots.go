package parser

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/temoto/robotstxt"
)

// ErrDisallowedByRobots is returned when robots.txt forbids the page for our user agent.
var ErrDisallowedByRobots = errors.New("disallowed by robots.txt")

// RobotsChecker consults the host's robots.txt before the page is fetched.
type RobotsChecker struct {
	client    *http.Client
	userAgent string
}

// NewRobotsChecker wires the HTTP client used for the robots.txt request.
func NewRobotsChecker(client *http.Client, userAgent string) *RobotsChecker {
	if client == nil {
		client = http.DefaultClient
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &RobotsChecker{client: client, userAgent: userAgent}
}

// Check returns ErrDisallowedByRobots when pageURL is not allowed.
// A missing robots.txt allows everything.
func (r *RobotsChecker) Check(ctx context.Context, pageURL string) error {
	u, err := url.Parse(pageURL)
	if err != nil {
		return fmt.Errorf("invalid page url %s: %w", pageURL, err)
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", u.Scheme, u.Host)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return fmt.Errorf("build robots request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("request robots.txt: %w", err)
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return fmt.Errorf("parse robots.txt: %w", err)
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if !data.TestAgent(path, r.userAgent) {
		return fmt.Errorf("%w: %s", ErrDisallowedByRobots, pageURL)
	}

	return nil
}
