// Package utils provides display and export helpers for the nba-salary CLI
package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/myusername/nba-salary-predictor/pkg/models"
)

// NoImage is shown in place of a headshot that could not be found
const NoImage = "no image"

// NewTable returns a rounded-style table writer that mirrors to w
func NewTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

// Round2 rounds to two decimals for display
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DisplaySearchResults prints the candidates of a player search
func DisplaySearchResults(w io.Writer, results []models.SearchResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No players found.")
		return
	}
	t := NewTable(w)
	t.AppendHeader(table.Row{"#", "Player", "Link"})
	for i, r := range results {
		t.AppendRow(table.Row{i, r.Name, r.Link})
	}
	t.Render()
}

// DisplaySeasons prints the seasons available for a player
func DisplaySeasons(w io.Writer, player string, seasons []string) {
	t := NewTable(w)
	t.SetTitle(player)
	t.AppendHeader(table.Row{"Season"})
	for _, s := range seasons {
		t.AppendRow(table.Row{s})
	}
	t.Render()
}

// DisplayRecord prints a season record as a single row, values rounded to two decimals.
// The schema is wide, so it is split across two tables.
func DisplayRecord(w io.Writer, record models.SeasonRecord) {
	const split = 15
	for _, bounds := range [][2]int{{0, split}, {split, models.FeatureCount}} {
		t := NewTable(w)
		header := table.Row{"Season"}
		row := table.Row{record.Season}
		for i := bounds[0]; i < bounds[1]; i++ {
			header = append(header, models.FeatureSchema[i])
			row = append(row, Round2(record.Values[i]))
		}
		t.AppendHeader(header)
		t.AppendRow(row)
		t.Render()
	}
}

// DisplayPrediction prints the player, headshot and predicted salary
func DisplayPrediction(w io.Writer, p models.Prediction, image string) {
	if image == "" {
		image = NoImage
	}
	fmt.Fprintf(w, "\n%s (%s)\nImage: %s\n", p.Player, p.Season, image)
	DisplayRecord(w, p.Record)
	fmt.Fprintf(w, "The player's predicted salary in the 2021-22 NBA season is: %s\n", p.String())
}

// SavePredictionToCSV saves a prediction and its feature record to a CSV file
func SavePredictionToCSV(p models.Prediction, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	header := append([]string{"Player", "Season"}, models.FeatureSchema[:]...)
	header = append(header, "PredictedSalary")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := []string{p.Player, p.Season}
	for _, v := range p.Record.Values {
		row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
	}
	row = append(row, strconv.FormatInt(p.Dollars(), 10))
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("failed to write prediction: %w", err)
	}

	cw.Flush()
	return cw.Error()
}
