// Package scraper fetches basketball-reference pages and resolves them into player statistics
package scraper

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/myusername/nba-salary-predictor/pkg/models"
)

// DefaultTimeout bounds a single page fetch
const DefaultTimeout = 30 * time.Second

const userAgent = "nba-salary-predictor/1.0 (+https://github.com/myusername/nba-salary-predictor)"

// PageFetcher downloads a page and returns its body
type PageFetcher interface {
	FetchURL(ctx context.Context, url string) (string, error)
}

// PageCache stores page bodies by URL
type PageCache interface {
	Get(ctx context.Context, url string) (string, bool, error)
	Set(ctx context.Context, url, body string) error
}

// Fetcher is a PageFetcher over HTTP with an optional cache in front
type Fetcher struct {
	client *resty.Client
	cache  PageCache
}

// NewFetcher creates a Fetcher. A zero timeout means DefaultTimeout; cache may be nil.
func NewFetcher(timeout time.Duration, cache PageCache) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", userAgent)
	client.SetHeader("Accept", "text/html,application/xhtml+xml")
	return &Fetcher{client: client, cache: cache}
}

// FetchURL downloads the HTML content from a URL and returns it as a string
func (f *Fetcher) FetchURL(ctx context.Context, url string) (string, error) {
	if f.cache != nil {
		body, ok, err := f.cache.Get(ctx, url)
		if err != nil {
			log.Printf("Page cache read failed for %s: %v", url, err)
		} else if ok {
			log.Printf("Using cached page for %s", url)
			return body, nil
		}
	}

	log.Printf("Fetching URL: %s", url)
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("%w: error fetching URL: %w", models.ErrFetch, err)
	}

	log.Printf("HTTP Status: %d (%s)", resp.StatusCode(), resp.Status())
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: non-200 status code: %d %s", models.ErrFetch, resp.StatusCode(), resp.Status())
	}

	body := resp.String()
	log.Printf("Content-Type: %s, Content-Length: %d bytes", resp.Header().Get("Content-Type"), len(body))

	if f.cache != nil {
		if err := f.cache.Set(ctx, url, body); err != nil {
			log.Printf("Page cache write failed for %s: %v", url, err)
		}
	}
	return body, nil
}

// SaveContentToFile saves content to a file
func SaveContentToFile(filename string, content string) error {
	return os.WriteFile(filename, []byte(content), 0644)
}
