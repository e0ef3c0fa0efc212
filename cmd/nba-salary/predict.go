package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/myusername/nba-salary-predictor/internal/utils"
	"github.com/myusername/nba-salary-predictor/pkg/models"
	"github.com/myusername/nba-salary-predictor/pkg/salary"
	"github.com/myusername/nba-salary-predictor/pkg/scraper"
)

var predictFlags struct {
	season string
	pick   int
	output string
}

func init() {
	f := predictCmd.Flags()
	f.StringVar(&predictFlags.season, "season", "", "Season label, e.g. 2021-22 (lists seasons when empty)")
	f.IntVar(&predictFlags.pick, "pick", -1, "Index of the search result to use (default: closest name)")
	f.StringVar(&predictFlags.output, "output", "", "Directory for CSV and HTML output")
}

var predictCmd = &cobra.Command{
	Use:   "predict <player name>",
	Short: "Predict a player's salary from one season of statistics.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		pipeline, err := newPipeline(ctx, cfg)
		if err != nil {
			return err
		}
		name := strings.Join(args, " ")

		results, err := pipeline.Search(ctx, name)
		if err != nil {
			return err
		}
		player, err := scraper.SelectCandidate(results, name, predictFlags.pick)
		if errors.Is(err, models.ErrNoMatch) {
			fmt.Fprintln(out, salary.UserMessage(err))
			return nil
		}
		if err != nil {
			return err
		}
		log.Printf("Selected %s (%s)", player.Name, player.Link)

		if predictFlags.season == "" {
			seasons, err := pipeline.Seasons(ctx, player.Link)
			if err != nil {
				return err
			}
			utils.DisplaySeasons(out, player.Name, seasons)
			return fmt.Errorf("choose one of the seasons above with --season")
		}

		res, err := pipeline.Predict(ctx, player, predictFlags.season)
		if errors.Is(err, models.ErrSeasonNotFound) {
			fmt.Fprintln(out, salary.UserMessage(err))
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", salary.UserMessage(err), err)
		}

		utils.DisplayPrediction(out, res.Prediction, res.Image)

		if predictFlags.output != "" {
			return saveOutput(predictFlags.output, res)
		}
		return nil
	},
}

// saveOutput writes the profile HTML and the prediction CSV under dir/html and dir/csv
func saveOutput(dir string, res salary.Result) error {
	htmlDir := filepath.Join(dir, "html")
	csvDir := filepath.Join(dir, "csv")
	for _, d := range []string{htmlDir, csvDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", d, err)
		}
	}

	p := res.Prediction
	slug := strings.ReplaceAll(strings.ToLower(p.Player), " ", "_")

	htmlPath := filepath.Join(htmlDir, slug+".html")
	if err := scraper.SaveContentToFile(htmlPath, res.Page); err != nil {
		log.Printf("Error saving profile HTML: %v", err)
	} else {
		log.Printf("Saved profile HTML to %s", htmlPath)
	}

	csvPath := filepath.Join(csvDir, fmt.Sprintf("%s_%s.csv", slug, p.Season))
	if err := utils.SavePredictionToCSV(p, csvPath); err != nil {
		return err
	}
	log.Printf("Saved prediction to %s", csvPath)
	return nil
}
