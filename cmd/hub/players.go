package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/footballhub/cli/internal/api"
	"github.com/footballhub/cli/internal/session"
	"github.com/footballhub/cli/internal/ui"
	"github.com/footballhub/cli/internal/workflow"
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Browse and rate players",
}

var playersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all players",
	RunE: func(cmd *cobra.Command, _ []string) error {
		players, err := app.client.Players(cmd.Context())
		if err != nil {
			return fail(err)
		}
		renderPlayersTable(players)
		return nil
	},
}

var playersSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search players",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		players, err := app.client.SearchPlayers(cmd.Context(), args[0])
		if err != nil {
			return fail(err)
		}
		renderPlayersTable(players)
		return nil
	},
}

var playersShowCmd = &cobra.Command{
	Use:   "show <email>",
	Short: "Show one player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := app.client.Player(cmd.Context(), args[0])
		if err != nil {
			return fail(err)
		}
		renderPlayer(p)
		return nil
	},
}

var playersRateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Rate opposing players after a match",
	Long: `Rate opposing players after a match.

Use --resume with the notification id from a "Rate Opponent Team Players"
notification to load the prepared rating screen, then pass one --rating
per player. Scores are 1-5.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}

		ratings, err := parseKeyIntPairs(rateRatings, "rating")
		if err != nil {
			return fail(err)
		}
		for email, score := range ratings {
			if score < 1 || score > 5 {
				return fail(api.NewInvalidInputError([]api.FieldError{{Field: email, Message: "score must be between 1 and 5"}}))
			}
		}

		matchID, teamID := rateMatchID, rateTeamID
		if rateResume != "" {
			var bundle workflow.RatingBundle
			if err := app.store.LoadBundle("rating", rateResume, &bundle); err != nil {
				if errors.Is(err, session.ErrNoBundle) {
					ui.InvalidAccess(os.Stdout)
					return err
				}
				return fail(err)
			}
			matchID, teamID = bundle.MatchID, bundle.TeamID
		}
		if matchID == "" || teamID == "" {
			ui.InvalidAccess(os.Stdout)
			return api.ErrNotFound
		}
		if len(ratings) == 0 {
			return fail(api.NewInvalidInputError([]api.FieldError{{Field: "rating", Message: "must not be empty"}}))
		}

		err = app.client.RatePlayers(cmd.Context(), api.RatingSubmission{
			MatchID: matchID,
			TeamID:  teamID,
			Ratings: ratings,
		})
		if err != nil {
			return fail(err)
		}
		if rateResume != "" {
			settleNotification(cmd, rateResume)
		}
		ui.ToastOK(os.Stdout, "Ratings submitted")
		return nil
	},
}

var (
	rateMatchID, rateTeamID, rateResume string
	rateRatings                         []string
)

func init() {
	playersRateCmd.Flags().StringVar(&rateMatchID, "match", "", "match id")
	playersRateCmd.Flags().StringVar(&rateTeamID, "team", "", "rated team id")
	playersRateCmd.Flags().StringVar(&rateResume, "resume", "", "notification id of the rating flow to resume")
	playersRateCmd.Flags().StringArrayVar(&rateRatings, "rating", nil, "rating, e.g. --rating a@x.com=4")

	playersCmd.AddCommand(playersListCmd, playersSearchCmd, playersShowCmd, playersRateCmd)
	rootCmd.AddCommand(playersCmd)
}
