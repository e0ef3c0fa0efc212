// Package models contains data structures for NBA player statistics and salary predictions
package models

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// SearchResult is one candidate returned by a player search
type SearchResult struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// FeatureSchema is the ordered set of statistics the salary model was trained on
var FeatureSchema = [...]string{
	"Age", "G", "GS", "MP",
	"FG", "FGA", "3P", "3PA", "2P", "2PA",
	"FT", "FTA", "DRB", "TRB", "AST", "STL",
	"BLK", "TOV", "PF", "PTS", "PER",
	"AST%", "USG%", "OWS", "DWS", "WS",
	"OBPM", "BPM", "VORP",
}

// FeatureCount is the number of fields in every SeasonRecord
const FeatureCount = len(FeatureSchema)

// SeasonRecord holds one player's statistics for one season, in FeatureSchema order
type SeasonRecord struct {
	Season string
	Values [FeatureCount]float64
}

// Get returns the value of the named feature
func (r SeasonRecord) Get(name string) (float64, bool) {
	for i, key := range FeatureSchema {
		if key == name {
			return r.Values[i], true
		}
	}
	return 0, false
}

// Features returns the record's values as a slice, in schema order
func (r SeasonRecord) Features() []float64 {
	out := make([]float64, FeatureCount)
	copy(out, r.Values[:])
	return out
}

// Map returns the record keyed by feature name
func (r SeasonRecord) Map() map[string]float64 {
	m := make(map[string]float64, FeatureCount)
	for i, key := range FeatureSchema {
		m[key] = r.Values[i]
	}
	return m
}

// Prediction is a predicted salary for one player season
type Prediction struct {
	Player string
	Season string
	Record SeasonRecord
	Salary float64
}

// Dollars returns the salary rounded to the nearest dollar
func (p Prediction) Dollars() int64 {
	return RoundDollars(p.Salary)
}

// String formats the salary as a currency string, e.g. $12,345,678
func (p Prediction) String() string {
	return FormatDollars(p.Dollars())
}

// RoundDollars rounds half away from zero, saturating at the int64 range.
// NaN rounds to zero.
func RoundDollars(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	case v < 0:
		return -int64(-v + 0.5)
	}
	return int64(v + 0.5)
}

// FormatDollars renders n with a dollar sign and thousands separators
func FormatDollars(n int64) string {
	if n < 0 {
		return "-$" + strings.TrimPrefix(humanize.Comma(n), "-")
	}
	return "$" + humanize.Comma(n)
}
