package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/footballhub/cli/internal/api"
	"github.com/footballhub/cli/internal/economy"
	"github.com/footballhub/cli/internal/model"
	"github.com/footballhub/cli/internal/session"
	"github.com/footballhub/cli/internal/ui"
	"github.com/footballhub/cli/internal/workflow"
)

const kickoffLayout = "2006-01-02 15:04"

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Browse, schedule and settle matches",
}

var matchesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List matches",
	RunE: func(cmd *cobra.Command, _ []string) error {
		matches, err := app.client.Matches(cmd.Context(), matchStatus)
		if err != nil {
			return fail(err)
		}
		rows := make([][]string, len(matches))
		for i, m := range matches {
			rows[i] = []string{m.ID, m.MyTeamID + " vs " + m.OpponentTeamID, m.Status, m.Location.Name, m.StartTime.Format(kickoffLayout)}
		}
		ui.Table(os.Stdout, []string{"ID", "Teams", "Status", "Venue", "Kickoff"}, rows)
		return nil
	},
}

var matchesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := app.client.Match(cmd.Context(), args[0])
		if err != nil {
			return fail(err)
		}
		renderMatch(m)
		return nil
	},
}

var matchesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Schedule a match and invite the opponent captain",
	Long: `Schedule a match and invite the opponent captain.

You must captain the team given by --team. The selected players owe the
per-player share of half the trophy fee; a selection someone cannot
afford is rejected before the invitation is sent.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		selection := splitList(matchPlayers)
		if matchTeamID == "" || matchOpponentID == "" || matchTrophyID == "" {
			return fail(api.NewInvalidInputError([]api.FieldError{{Field: "team", Message: "--team, --opponent and --trophy are required"}}))
		}
		start, err := time.Parse(kickoffLayout, matchStart)
		if err != nil {
			return fail(api.NewInvalidInputError([]api.FieldError{{Field: "start", Message: "must look like " + kickoffLayout}}))
		}
		end := start.Add(2 * time.Hour)
		if matchEnd != "" {
			if end, err = time.Parse(kickoffLayout, matchEnd); err != nil {
				return fail(api.NewInvalidInputError([]api.FieldError{{Field: "end", Message: "must look like " + kickoffLayout}}))
			}
		}

		team, err := app.client.Team(cmd.Context(), matchTeamID)
		if err != nil {
			return fail(err)
		}
		if team.Captain != app.sess.Player.Email {
			return fail(api.ErrForbidden)
		}
		for _, email := range selection {
			if !team.HasPlayer(email) {
				return fail(api.NewInvalidInputError([]api.FieldError{{Field: "players", Message: email + " is not on the squad"}}))
			}
		}

		trophy, err := app.client.Trophy(cmd.Context(), matchTrophyID)
		if err != nil {
			return fail(err)
		}
		selected := make([]model.Player, 0, len(selection))
		for _, email := range selection {
			p, perr := app.client.Player(cmd.Context(), email)
			if perr != nil {
				return fail(perr)
			}
			selected = append(selected, p)
		}
		if v := economy.ValidateSelection(trophy.Fee, selected, nil); !v.OK() {
			ui.ToastWarn(os.Stdout, v.UserMessage())
			return errors.New(v.UserMessage())
		}

		m, err := app.client.CreateMatch(cmd.Context(), api.MatchCreate{
			MyTeamID:       matchTeamID,
			OpponentTeamID: matchOpponentID,
			TrophyID:       matchTrophyID,
			Location:       model.Venue{Name: matchVenue, Lat: matchLat, Lng: matchLng},
			StartTime:      start,
			EndTime:        end,
			MyPlayers:      selection,
		})
		if err != nil {
			return fail(err)
		}
		ui.ToastOK(os.Stdout, "Match scheduled: "+m.ID)
		return nil
	},
}

var matchesRespondCmd = &cobra.Command{
	Use:   "respond <notification-id>",
	Short: "Accept a match invitation with your player selection",
	Long: `Accept a match invitation with your player selection.

The notification id must belong to a match invitation you already opened
with "hub notifications act <id> accept"; the prepared invitation screen
holds both rosters and the fee split. The selection must be non-empty,
every selected player must afford the per-player share, and nobody may
appear on both sides.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		var bundle workflow.MatchResponseBundle
		if err := app.store.LoadBundle("match-response", args[0], &bundle); err != nil {
			if errors.Is(err, session.ErrNoBundle) {
				ui.InvalidAccess(os.Stdout)
				return err
			}
			return fail(err)
		}

		emails := splitList(respondPlayers)
		byEmail := make(map[string]model.Player, len(bundle.MyRoster))
		for _, p := range bundle.MyRoster {
			byEmail[p.Email] = p
		}
		selected := make([]model.Player, 0, len(emails))
		for _, email := range emails {
			p, ok := byEmail[email]
			if !ok {
				return fail(api.NewInvalidInputError([]api.FieldError{{Field: "players", Message: email + " is not on the squad"}}))
			}
			selected = append(selected, p)
		}

		if v := economy.ValidateSelection(bundle.Trophy.Fee, selected, bundle.OpponentEmails()); !v.OK() {
			ui.ToastWarn(os.Stdout, v.UserMessage())
			for _, email := range v.Offenders {
				ui.InlineError(os.Stdout, email, "cannot join this selection")
			}
			return errors.New(v.UserMessage())
		}

		if err := app.router.CompleteMatchResponse(cmd.Context(), &app.sess.Player, args[0], bundle.Match.ID, emails); err != nil {
			return fail(err)
		}
		_ = app.store.DeleteBundle(args[0])
		ui.ToastOK(os.Stdout, "Invitation accepted, match is on")
		return nil
	},
}

var matchesSubmitStatsCmd = &cobra.Command{
	Use:   "submit-stats <notification-id>",
	Short: "Submit your side's stat lines for a completed match",
	Long: `Submit your side's stat lines for a completed match.

Each --line covers one player as email:goals:assists:yellow:red. Once
both captains have submitted, the backend settles the trophy.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		var bundle workflow.StatsBundle
		if err := app.store.LoadBundle("stats", args[0], &bundle); err != nil {
			if errors.Is(err, session.ErrNoBundle) {
				ui.InvalidAccess(os.Stdout)
				return err
			}
			return fail(err)
		}

		roster := make(map[string]bool, len(bundle.ActingRoster))
		for _, p := range bundle.ActingRoster {
			roster[p.Email] = true
		}
		lines := make([]model.StatLine, 0, len(statLines))
		for _, raw := range statLines {
			line, err := parseStatLine(raw)
			if err != nil {
				return fail(err)
			}
			if !roster[line.Player] {
				return fail(api.NewInvalidInputError([]api.FieldError{{Field: "line", Message: line.Player + " is not in your lineup"}}))
			}
			lines = append(lines, line)
		}
		if len(lines) == 0 {
			return fail(api.NewInvalidInputError([]api.FieldError{{Field: "line", Message: "must not be empty"}}))
		}
		if statMOTM != "" && !roster[statMOTM] {
			return fail(api.NewInvalidInputError([]api.FieldError{{Field: "motm", Message: statMOTM + " is not in your lineup"}}))
		}

		m, err := app.client.FinalizeMatch(cmd.Context(), bundle.Match.ID, api.StatsSubmission{
			TeamID: bundle.ActingTeam.ID,
			Lines:  lines,
			MOTM:   statMOTM,
		})
		if err != nil {
			return fail(err)
		}
		settleNotification(cmd, args[0])
		ui.ToastOK(os.Stdout, "Stats submitted")
		renderMatch(m)
		return nil
	},
}

// parseStatLine parses "email:goals:assists:yellow:red".
func parseStatLine(raw string) (model.StatLine, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 5 {
		return model.StatLine{}, api.NewInvalidInputError([]api.FieldError{{Field: "line", Message: fmt.Sprintf("%q must look like email:goals:assists:yellow:red", raw)}})
	}
	nums := make([]int, 4)
	for i, p := range parts[1:] {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return model.StatLine{}, api.NewInvalidInputError([]api.FieldError{{Field: "line", Message: fmt.Sprintf("%q is not a valid count", p)}})
		}
		nums[i] = n
	}
	return model.StatLine{
		Player:      strings.TrimSpace(parts[0]),
		Goals:       nums[0],
		Assists:     nums[1],
		YellowCards: nums[2],
		RedCards:    nums[3],
	}, nil
}

var (
	matchStatus                                 string
	matchTeamID, matchOpponentID, matchTrophyID string
	matchVenue, matchStart, matchEnd            string
	matchLat, matchLng                          float64
	matchPlayers                                string
	respondPlayers                              string
	statLines                                   []string
	statMOTM                                    string
)

func init() {
	matchesListCmd.Flags().StringVar(&matchStatus, "status", "", "filter by status (upcoming, live, completed, final)")

	matchesCreateCmd.Flags().StringVar(&matchTeamID, "team", "", "your team id")
	matchesCreateCmd.Flags().StringVar(&matchOpponentID, "opponent", "", "opponent team id")
	matchesCreateCmd.Flags().StringVar(&matchTrophyID, "trophy", "", "trophy id")
	matchesCreateCmd.Flags().StringVar(&matchVenue, "venue", "", "venue name")
	matchesCreateCmd.Flags().Float64Var(&matchLat, "lat", 0, "venue latitude")
	matchesCreateCmd.Flags().Float64Var(&matchLng, "lng", 0, "venue longitude")
	matchesCreateCmd.Flags().StringVar(&matchStart, "start", "", "kickoff, e.g. \"2026-09-12 18:30\"")
	matchesCreateCmd.Flags().StringVar(&matchEnd, "end", "", "end time, defaults to kickoff + 2h")
	matchesCreateCmd.Flags().StringVar(&matchPlayers, "players", "", "comma-separated player emails")

	matchesRespondCmd.Flags().StringVar(&respondPlayers, "players", "", "comma-separated player emails")

	matchesSubmitStatsCmd.Flags().StringArrayVar(&statLines, "line", nil, "stat line, email:goals:assists:yellow:red")
	matchesSubmitStatsCmd.Flags().StringVar(&statMOTM, "motm", "", "man of the match nominee (player email)")

	matchesCmd.AddCommand(matchesListCmd, matchesShowCmd, matchesCreateCmd, matchesRespondCmd, matchesSubmitStatsCmd)
	rootCmd.AddCommand(matchesCmd)
}
