package scraper

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/myusername/nba-salary-predictor/pkg/models"
	"github.com/myusername/nba-salary-predictor/pkg/parser"
)

// DefaultBaseURL is the site every search and profile link is resolved against
const DefaultBaseURL = "https://www.basketball-reference.com"

// Client resolves player names and extracts season records
type Client struct {
	baseURL  string
	fetcher  PageFetcher
	strategy parser.TableStrategy
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another host, e.g. a test server
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTableStrategy overrides how the basic and advanced tables are located
func WithTableStrategy(strategy parser.TableStrategy) Option {
	return func(c *Client) {
		c.strategy = strategy
	}
}

// NewClient creates a Client that downloads pages with fetcher
func NewClient(fetcher PageFetcher, opts ...Option) *Client {
	c := &Client{
		baseURL:  DefaultBaseURL,
		fetcher:  fetcher,
		strategy: parser.PositionalTables,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the site the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SearchURL builds the search endpoint URL for a player name
func (c *Client) SearchURL(name string) string {
	query := strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
	return c.baseURL + "/search/search.fcgi?search=" + query
}

// Search resolves a free-text player name into profile candidates.
// An empty slice with a nil error means the search found nobody.
func (c *Client) Search(ctx context.Context, name string) ([]models.SearchResult, error) {
	log.Printf("Searching for player %q", name)

	body, err := c.fetcher.FetchURL(ctx, c.SearchURL(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrResolution, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: error parsing search page: %w", models.ErrResolution, err)
	}

	return parser.ParseSearchPage(doc, c.baseURL)
}

// Profile is a downloaded and parsed player page
type Profile struct {
	Link     string
	HTML     string
	doc      *goquery.Document
	tables   []models.Table
	strategy parser.TableStrategy
}

// CheckLink rejects links that are not player pages on the client's site,
// so only resolver output is ever fetched as a profile
func (c *Client) CheckLink(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrInvalidLink, err)
	}
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("%w: bad base URL: %w", models.ErrInvalidLink, err)
	}
	if !strings.EqualFold(u.Scheme, base.Scheme) || !strings.EqualFold(u.Host, base.Host) || u.User != nil {
		return fmt.Errorf("%w: %q is not on %s", models.ErrInvalidLink, link, c.baseURL)
	}
	if !strings.HasPrefix(path.Clean(u.Path), parser.PlayersPrefix+"/") {
		return fmt.Errorf("%w: %q is outside %s", models.ErrInvalidLink, link, parser.PlayersPrefix)
	}
	return nil
}

// Profile downloads and parses a player page once so several lookups can share it
func (c *Client) Profile(ctx context.Context, link string) (*Profile, error) {
	if err := c.CheckLink(link); err != nil {
		return nil, err
	}

	body, err := c.fetcher.FetchURL(ctx, link)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: error parsing profile page: %w", models.ErrParse, err)
	}

	tables := parser.ParseTables(doc)
	log.Printf("Found %d tables on %s", len(tables), link)

	return &Profile{Link: link, HTML: body, doc: doc, tables: tables, strategy: c.strategy}, nil
}

// Tables returns the profile's tables in page order
func (p *Profile) Tables() []models.Table {
	return p.tables
}

// Seasons lists the season labels of the basic stats table, excluding Career.
// The basic table is located with the same strategy SeasonRecord uses.
func (p *Profile) Seasons() []string {
	basic, ok := parser.BasicTable(p.tables, p.strategy)
	if !ok {
		return []string{}
	}
	return parser.SeasonLabels(basic)
}

// Image returns the URL of the player's headshot
func (p *Profile) Image() (string, error) {
	src, err := parser.ProfileImage(p.doc)
	if err != nil {
		return "", err
	}
	return parser.AbsoluteLink(p.Link, src)
}

// SeasonRecord extracts the feature record for one season
func (p *Profile) SeasonRecord(season string) (models.SeasonRecord, error) {
	return parser.ExtractSeasonRecord(p.tables, season, p.strategy)
}

// Seasons downloads a profile and lists its season labels
func (c *Client) Seasons(ctx context.Context, link string) ([]string, error) {
	p, err := c.Profile(ctx, link)
	if err != nil {
		return nil, err
	}
	return p.Seasons(), nil
}

// SeasonRecord downloads a profile and extracts the record for one season
func (c *Client) SeasonRecord(ctx context.Context, link, season string) (models.SeasonRecord, error) {
	p, err := c.Profile(ctx, link)
	if err != nil {
		return models.SeasonRecord{}, err
	}
	return c.Extract(p, season)
}

// Extract pulls one season's record out of an already downloaded profile
func (c *Client) Extract(p *Profile, season string) (models.SeasonRecord, error) {
	return p.SeasonRecord(season)
}

// ProfileImage downloads a profile and returns its headshot URL.
// Every failure is reported as ErrImageUnavailable.
func (c *Client) ProfileImage(ctx context.Context, link string) (string, error) {
	p, err := c.Profile(ctx, link)
	if err != nil {
		return "", fmt.Errorf("%w: %w", models.ErrImageUnavailable, err)
	}
	src, err := p.Image()
	if err != nil {
		return "", fmt.Errorf("%w: %w", models.ErrImageUnavailable, err)
	}
	return src, nil
}
