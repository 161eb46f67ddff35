package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/footballhub/cli/internal/economy"
	"github.com/footballhub/cli/internal/ui"
)

var trophiesCmd = &cobra.Command{
	Use:   "trophies",
	Short: "Browse trophies",
}

var trophiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all trophies",
	RunE: func(cmd *cobra.Command, _ []string) error {
		trophies, err := app.client.Trophies(cmd.Context())
		if err != nil {
			return fail(err)
		}
		rows := make([][]string, len(trophies))
		for i, t := range trophies {
			rows[i] = []string{
				t.Title, t.ID, ui.Itoa(t.Fee),
				fmt.Sprintf("%d%% / %d%%", t.Distribution.Win, t.Distribution.Lose),
			}
		}
		ui.Table(os.Stdout, []string{"Title", "ID", "Fee", "Win/Lose"}, rows)
		return nil
	},
}

var trophiesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one trophy with its fee split",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := app.client.Trophy(cmd.Context(), args[0])
		if err != nil {
			return fail(err)
		}
		ui.Title(os.Stdout, t.Title)
		ui.Field(os.Stdout, "Entry fee", fmt.Sprintf("%d total, %d per team", t.Fee, economy.TeamShare(t.Fee)))
		ui.Field(os.Stdout, "Distribution", fmt.Sprintf("winner %d%%, loser %d%%", t.Distribution.Win, t.Distribution.Lose))
		ui.Field(os.Stdout, "Bonuses", fmt.Sprintf("+%d per goal, +%d per assist, +%d MOTM", t.Bonuses.Goal, t.Bonuses.Assist, t.Bonuses.MOTM))
		for _, n := range []int{5, 7, 11} {
			ui.Dim(os.Stdout, fmt.Sprintf("%d-a-side: %d points per player", n, economy.PerPlayerShare(t.Fee, n)))
		}
		return nil
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the global player ranking",
	RunE: func(cmd *cobra.Command, _ []string) error {
		entries, err := app.client.Leaderboard(cmd.Context())
		if err != nil {
			return fail(err)
		}
		rows := make([][]string, len(entries))
		for i, e := range entries {
			rows[i] = []string{ui.Itoa(e.Rank), e.Name, e.Email, e.Team, ui.Itoa(e.Points), ui.Itoa(e.Wins)}
		}
		ui.Table(os.Stdout, []string{"#", "Name", "Email", "Team", "Points", "Wins"}, rows)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show global hub counters",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := app.client.Stats(cmd.Context())
		if err != nil {
			return fail(err)
		}
		ui.Title(os.Stdout, "Football Hub")
		ui.Field(os.Stdout, "Players", ui.Itoa(s.Players))
		ui.Field(os.Stdout, "Teams", ui.Itoa(s.Teams))
		ui.Field(os.Stdout, "Matches", ui.Itoa(s.Matches))
		ui.Field(os.Stdout, "Trophies", ui.Itoa(s.Trophies))
		return nil
	},
}

func init() {
	trophiesCmd.AddCommand(trophiesListCmd, trophiesShowCmd)
	rootCmd.AddCommand(trophiesCmd, leaderboardCmd, statsCmd)
}
