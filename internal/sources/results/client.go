// Package results scrapes the HTML live-results page into score rows.
package results

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"live-match-service/internal/domain"
	"live-match-service/internal/sources"
)

const defaultTimeout = 12 * time.Second

// Config controls how the results client reaches the upstream page.
type Config struct {
	URL        string
	HTTPClient *http.Client
	Timeout    time.Duration
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches the results page and extracts score rows.
type Client struct {
	url        string
	httpClient httpDoer
	timeout    time.Duration
}

// NewClient constructs a results client with the provided configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		doer = &http.Client{}
	}
	return &Client{
		url:        cfg.URL,
		httpClient: doer,
		timeout:    timeout,
	}
}

// FetchResults retrieves and parses the current results table.
func (c *Client) FetchResults(ctx context.Context) ([]domain.ResultRow, error) {
	if c.url == "" {
		return nil, sources.ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; live-match-service)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("results: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	return parseResults(doc)
}
