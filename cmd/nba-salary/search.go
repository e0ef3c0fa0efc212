package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/myusername/nba-salary-predictor/internal/utils"
)

var searchCmd = &cobra.Command{
	Use:   "search <player name>",
	Short: "List the players matching a name.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		results, err := newClient(cmd.Context(), cfg).Search(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		utils.DisplaySearchResults(cmd.OutOrStdout(), results)
		return nil
	},
}
