package parser

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/myusername/nba-salary-predictor/pkg/models"
)

// TableStrategy maps the number of tables on a profile page to the
// positions of the basic and advanced statistics tables.
type TableStrategy func(count int) (basic, advanced int)

// PositionalTables is the layout of basketball-reference profiles: players with
// playoff appearances carry extra tables, which pushes the advanced table from 3 to 5.
func PositionalTables(count int) (basic, advanced int) {
	if count >= 6 {
		return 0, 5
	}
	return 0, 3
}

// DroppedAdvancedColumns duplicate the basic table or are blank spacers
var DroppedAdvancedColumns = []string{"Pos", "Age", "Tm", "Team", "G", "MP", "Unnamed: 19", "Unnamed: 24"}

// missingMarkers are the blank-diff values the site uses for absent stats
var missingMarkers = map[string]bool{
	"":  true,
	"-": true,
	"—": true,
}

// SelectTables picks the basic and advanced tables out of a profile page
func SelectTables(tables []models.Table, strategy TableStrategy) (basic, advanced models.Table, err error) {
	if strategy == nil {
		strategy = PositionalTables
	}
	b, a := strategy(len(tables))
	if b < 0 || b >= len(tables) || a < 0 || a >= len(tables) {
		return basic, advanced, fmt.Errorf("%w: profile page has %d tables, need positions %d and %d",
			models.ErrParse, len(tables), b, a)
	}
	return tables[b], tables[a], nil
}

// BasicTable returns the basic statistics table the strategy points at
func BasicTable(tables []models.Table, strategy TableStrategy) (models.Table, bool) {
	if strategy == nil {
		strategy = PositionalTables
	}
	b, _ := strategy(len(tables))
	if b < 0 || b >= len(tables) {
		return models.Table{}, false
	}
	return tables[b], true
}

// ExtractSeasonRecord builds the model's feature record for one season from a profile's tables
func ExtractSeasonRecord(tables []models.Table, season string, strategy TableStrategy) (models.SeasonRecord, error) {
	basic, advanced, err := SelectTables(tables, strategy)
	if err != nil {
		return models.SeasonRecord{}, err
	}

	if basic.ColumnIndex(seasonColumn) < 0 || advanced.ColumnIndex(seasonColumn) < 0 {
		return models.SeasonRecord{}, fmt.Errorf("%w: selected tables have no %s column", models.ErrParse, seasonColumn)
	}

	// A traded player has a TOT row first, then one row per team
	basicRows := playedRows(FilterRows(basic, seasonColumn, season))
	advancedRows := playedRows(FilterRows(advanced, seasonColumn, season))
	if len(basicRows) == 0 || len(advancedRows) == 0 {
		return models.SeasonRecord{}, fmt.Errorf("%w: %q (basic rows: %d, advanced rows: %d)",
			models.ErrSeasonNotFound, season, len(basicRows), len(advancedRows))
	}

	adv := advancedRows[0]
	for _, col := range DroppedAdvancedColumns {
		delete(adv, col)
	}

	merged := MergeRows(basicRows[0], adv, seasonColumn)
	record, err := ProjectRecord(merged)
	if err != nil {
		return models.SeasonRecord{}, err
	}
	record.Season = season

	log.Printf("Extracted %d features for season %s", models.FeatureCount, season)
	return record, nil
}

// playedRows drops note rows such as "Did Not Play (injury)", whose stat cells hold text
func playedRows(rows []models.Row) []models.Row {
	var played []models.Row
	for _, row := range rows {
		if games, ok := row[gamesColumn]; ok {
			if _, err := ParseStat(games); err != nil {
				continue
			}
		}
		played = append(played, row)
	}
	return played
}

// MergeRows joins two rows on key. Other columns present in both are kept
// under _x (left) and _y (right) suffixes so neither side silently wins.
func MergeRows(left, right models.Row, key string) models.Row {
	merged := make(models.Row, len(left)+len(right))
	for col, v := range left {
		merged[col] = v
	}
	for col, v := range right {
		if col == key {
			continue
		}
		if lv, clash := left[col]; clash {
			delete(merged, col)
			merged[col+"_x"] = lv
			merged[col+"_y"] = v
			continue
		}
		merged[col] = v
	}
	return merged
}

// ProjectRecord orders a merged row onto the feature schema, replacing missing markers with zero
func ProjectRecord(row models.Row) (models.SeasonRecord, error) {
	var record models.SeasonRecord
	for i, key := range models.FeatureSchema {
		raw, ok := row[key]
		if !ok {
			return models.SeasonRecord{}, fmt.Errorf("%w: missing column %q", models.ErrSchema, key)
		}
		v, err := ParseStat(raw)
		if err != nil {
			return models.SeasonRecord{}, fmt.Errorf("column %q: %w", key, err)
		}
		record.Values[i] = v
	}
	return record, nil
}

// ParseStat converts a table cell to a number, treating missing markers as zero
func ParseStat(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if missingMarkers[s] {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", models.ErrParse, raw)
	}
	return v, nil
}
