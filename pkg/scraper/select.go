package scraper

import (
	"fmt"
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/myusername/nba-salary-predictor/pkg/models"
)

// SelectCandidate picks one search result. A non-negative index selects by
// position; otherwise the name closest to query wins, first one on ties.
func SelectCandidate(results []models.SearchResult, query string, index int) (models.SearchResult, error) {
	if len(results) == 0 {
		return models.SearchResult{}, fmt.Errorf("%w for %q", models.ErrNoMatch, query)
	}
	if index >= 0 {
		if index >= len(results) {
			return models.SearchResult{}, fmt.Errorf("candidate %d out of range, search returned %d", index, len(results))
		}
		return results[index], nil
	}

	q := strings.ToLower(strings.TrimSpace(query))
	best, bestScore := 0, -1.0
	for i, r := range results {
		score := matchr.JaroWinkler(q, strings.ToLower(r.Name), false)
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return results[best], nil
}
