package parser

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/myusername/nba-salary-predictor/pkg/models"
)

// PlayersPrefix is the path namespace of player profile pages
const PlayersPrefix = "/players"

// IsProfilePage reports whether the document is a player profile rather than a list of search hits
func IsProfilePage(doc *goquery.Document) bool {
	return doc.Find("div.search-item-name").Length() == 0 && doc.Find("div#info").Length() > 0
}

// ParseSearchPage extracts player candidates from a search response.
// The search endpoint redirects straight to the profile when there is a single hit,
// so both the profile layout and the results layout are handled.
func ParseSearchPage(doc *goquery.Document, baseURL string) ([]models.SearchResult, error) {
	if IsProfilePage(doc) {
		result, err := parseRedirectedProfile(doc, baseURL)
		if err != nil {
			return nil, err
		}
		return []models.SearchResult{result}, nil
	}

	results := []models.SearchResult{}
	doc.Find("div.search-item-name").Each(func(i int, item *goquery.Selection) {
		anchor := item.Find("a").First()
		href, ok := anchor.Attr("href")
		if !ok || !strings.HasPrefix(href, PlayersPrefix) {
			return
		}
		link, err := AbsoluteLink(baseURL, href)
		if err != nil {
			log.Printf("Skipping search result with bad link %q: %v", href, err)
			return
		}
		results = append(results, models.SearchResult{
			Name: strings.TrimSpace(anchor.Text()),
			Link: link,
		})
	})

	log.Printf("Found %d player search results", len(results))
	return results, nil
}

func parseRedirectedProfile(doc *goquery.Document, baseURL string) (models.SearchResult, error) {
	name := strings.TrimSpace(doc.Find("div#info").First().Find("span").First().Text())
	if name == "" {
		return models.SearchResult{}, fmt.Errorf("%w: profile info block has no player name", models.ErrResolution)
	}

	href, ok := doc.Find("div#bottom_nav_container").First().Find("a").First().Attr("href")
	if !ok || href == "" {
		return models.SearchResult{}, fmt.Errorf("%w: profile page has no bottom navigation link", models.ErrResolution)
	}
	link, err := AbsoluteLink(baseURL, href)
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("%w: %w", models.ErrResolution, err)
	}

	log.Printf("Search redirected to profile of %s", name)
	return models.SearchResult{Name: name, Link: link}, nil
}

// AbsoluteLink resolves href against baseURL; absolute hrefs are returned unchanged
func AbsoluteLink(baseURL, href string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("invalid link %q: %w", href, err)
	}
	return base.ResolveReference(ref).String(), nil
}
