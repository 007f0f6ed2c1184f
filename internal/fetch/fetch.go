// Package fetch retrieves remote HTML documents for normalization.
package fetch

import (
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/wordrinse/wordrinse/internal/logger"
)

// Chrome user agent for better compatibility
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Config holds fetcher configuration.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		UserAgent: defaultUserAgent,
		Timeout:   30 * time.Second,
	}
}

// Fetcher downloads pages over HTTP. Normalization only ever needs the raw
// document body; crawling and browser rendering are out of scope.
type Fetcher struct {
	config Config
}

// New creates a fetcher, filling unset config fields with defaults.
func New(cfg Config) *Fetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Fetcher{config: cfg}
}

// Fetch retrieves the document at targetURL and returns its body.
func (f *Fetcher) Fetch(targetURL string) (string, error) {
	logger.Debug("fetch starting", "url", targetURL)

	// A fresh collector per request keeps fetches independent.
	c := colly.NewCollector(
		colly.UserAgent(f.config.UserAgent),
	)
	c.SetRequestTimeout(f.config.Timeout)

	var body string
	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		body = string(r.Body)
		logger.Debug("fetch response received",
			"status", r.StatusCode,
			"content_type", r.Headers.Get("Content-Type"),
			"body_size", len(r.Body))
	})

	c.OnError(func(r *colly.Response, err error) {
		status := 0
		if r != nil {
			status = r.StatusCode
		}
		fetchErr = fmt.Errorf("fetch %s: status %d: %w", targetURL, status, err)
	})

	if err := c.Visit(targetURL); err != nil {
		return "", fmt.Errorf("fetch %s: %w", targetURL, err)
	}
	if fetchErr != nil {
		return "", fetchErr
	}

	logger.Debug("fetch complete", "url", targetURL, "bytes", len(body))
	return body, nil
}
