package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/footballhub/cli/internal/api"
	"github.com/footballhub/cli/internal/ui"
)

type teamForm struct {
	Name        string `validate:"required,max=50"`
	Location    string `validate:"required"`
	FoundedYear int    `validate:"gte=1850,lte=2100"`
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Browse and manage teams",
}

var teamsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all teams",
	RunE: func(cmd *cobra.Command, _ []string) error {
		teams, err := app.client.Teams(cmd.Context())
		if err != nil {
			return fail(err)
		}
		rows := make([][]string, len(teams))
		for i, t := range teams {
			rows[i] = []string{t.Name, t.ID, t.Location, t.Captain, ui.Itoa(t.Wins), ui.Ftoa(t.RatingAvg)}
		}
		ui.Table(os.Stdout, []string{"Name", "ID", "Location", "Captain", "Wins", "Rating"}, rows)
		return nil
	},
}

var teamsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := app.client.Team(cmd.Context(), args[0])
		if err != nil {
			return fail(err)
		}
		renderTeam(t)
		return nil
	},
}

var teamsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Found a team with you as captain",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		form := teamForm{Name: teamName, Location: teamLocation, FoundedYear: teamFounded}
		if err := checkForm(form); err != nil {
			return fail(err)
		}
		t, err := app.client.CreateTeam(cmd.Context(), api.TeamUpsert{
			Name:        form.Name,
			Location:    form.Location,
			FoundedYear: form.FoundedYear,
			LogoURL:     teamLogo,
		})
		if err != nil {
			return fail(err)
		}
		ui.ToastOK(os.Stdout, "Team created: "+t.ID)
		return nil
	},
}

var teamsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a team you captain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		// Captainship is checked client-side so a non-captain never fires
		// the request; the backend enforces it regardless.
		t, err := app.client.Team(cmd.Context(), args[0])
		if err != nil {
			return fail(err)
		}
		if t.Captain != app.sess.Player.Email {
			return fail(api.ErrForbidden)
		}
		upd := api.TeamUpsert{Name: t.Name, Location: t.Location, FoundedYear: t.FoundedYear, LogoURL: t.LogoURL}
		if teamName != "" {
			upd.Name = teamName
		}
		if teamLocation != "" {
			upd.Location = teamLocation
		}
		if teamFounded != 0 {
			upd.FoundedYear = teamFounded
		}
		if teamLogo != "" {
			upd.LogoURL = teamLogo
		}
		if _, err := app.client.UpdateTeam(cmd.Context(), args[0], upd); err != nil {
			return fail(err)
		}
		ui.ToastOK(os.Stdout, "Team updated")
		return nil
	},
}

var teamsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Disband a team you captain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		if !confirmTeamDelete {
			ui.ToastWarn(os.Stdout, "Re-run with --yes to confirm")
			return nil
		}
		if err := app.client.DeleteTeam(cmd.Context(), args[0]); err != nil {
			return fail(err)
		}
		ui.ToastOK(os.Stdout, "Team disbanded")
		return nil
	},
}

var teamsJoinCmd = &cobra.Command{
	Use:   "join <id>",
	Short: "Ask the captain to join a team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		if err := app.client.RequestToJoin(cmd.Context(), args[0]); err != nil {
			return fail(err)
		}
		ui.ToastOK(os.Stdout, "Join request sent")
		return nil
	},
}

var teamsInviteCmd = &cobra.Command{
	Use:   "invite <team-id> <player-email>",
	Short: "Invite a player onto a team you captain",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		if err := app.client.InvitePlayer(cmd.Context(), args[0], args[1]); err != nil {
			return fail(err)
		}
		ui.ToastOK(os.Stdout, "Invitation sent")
		return nil
	},
}

var teamsLeaveCmd = &cobra.Command{
	Use:   "leave <id>",
	Short: "Leave a team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		if err := app.client.LeaveTeam(cmd.Context(), args[0]); err != nil {
			return fail(err)
		}
		ui.ToastOK(os.Stdout, "Left the team")
		return nil
	},
}

var (
	teamName, teamLocation, teamLogo string
	teamFounded                      int
	confirmTeamDelete                bool
)

func init() {
	for _, c := range []*cobra.Command{teamsCreateCmd, teamsEditCmd} {
		c.Flags().StringVar(&teamName, "name", "", "team name")
		c.Flags().StringVar(&teamLocation, "location", "", "home location")
		c.Flags().IntVar(&teamFounded, "founded", 0, "founding year")
		c.Flags().StringVar(&teamLogo, "logo", "", "logo URL")
	}
	teamsDeleteCmd.Flags().BoolVar(&confirmTeamDelete, "yes", false, "confirm deletion")

	teamsCmd.AddCommand(teamsListCmd, teamsShowCmd, teamsCreateCmd, teamsEditCmd, teamsDeleteCmd, teamsJoinCmd, teamsInviteCmd, teamsLeaveCmd)
	rootCmd.AddCommand(teamsCmd)
}
