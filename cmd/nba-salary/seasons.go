package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/myusername/nba-salary-predictor/internal/utils"
	"github.com/myusername/nba-salary-predictor/pkg/scraper"
)

var seasonsPick int

func init() {
	seasonsCmd.Flags().IntVar(&seasonsPick, "pick", -1, "Index of the search result to use (default: closest name)")
}

var seasonsCmd = &cobra.Command{
	Use:   "seasons <player name>",
	Short: "List the seasons available for a player.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		name := strings.Join(args, " ")
		client := newClient(cmd.Context(), cfg)

		results, err := client.Search(cmd.Context(), name)
		if err != nil {
			return err
		}
		player, err := scraper.SelectCandidate(results, name, seasonsPick)
		if err != nil {
			return err
		}

		seasons, err := client.Seasons(cmd.Context(), player.Link)
		if err != nil {
			return err
		}
		utils.DisplaySeasons(cmd.OutOrStdout(), player.Name, seasons)
		return nil
	},
}
