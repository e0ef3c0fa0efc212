package parser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/myusername/nba-salary-predictor/pkg/models"
)

const (
	seasonColumn = "Season"
	careerLabel  = "Career"
	gamesColumn  = "G"
)

// SeasonLabels lists the seasons in a basic stats table, up to the Career summary row.
// Repeated labels (one row per team after a trade) and repeated header rows are collapsed,
// and seasons the player sat out are left off since they carry no stats to predict from.
func SeasonLabels(basic models.Table) []string {
	idx := basic.ColumnIndex(seasonColumn)
	if idx < 0 {
		return nil
	}
	games := basic.ColumnIndex(gamesColumn)

	labels := []string{}
	seen := make(map[string]bool)
	for _, row := range basic.Rows {
		label := row[idx]
		if label == careerLabel {
			break
		}
		if label == "" || label == seasonColumn || seen[label] {
			continue
		}
		if games >= 0 {
			if _, err := ParseStat(row[games]); err != nil {
				continue
			}
		}
		seen[label] = true
		labels = append(labels, label)
	}
	return labels
}

// ProfileImage returns the src of the headshot in the first media item
func ProfileImage(doc *goquery.Document) (string, error) {
	media := doc.Find("div.media-item").First()
	if media.Length() == 0 {
		return "", fmt.Errorf("%w: no media item on page", models.ErrImageUnavailable)
	}
	src, ok := media.Find("img").First().Attr("src")
	if !ok || strings.TrimSpace(src) == "" {
		return "", fmt.Errorf("%w: media item has no image", models.ErrImageUnavailable)
	}
	return src, nil
}
