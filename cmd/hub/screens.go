package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/footballhub/cli/internal/economy"
	"github.com/footballhub/cli/internal/model"
	"github.com/footballhub/cli/internal/ui"
	"github.com/footballhub/cli/internal/workflow"
)

func renderPlayer(p model.Player) {
	ui.Title(os.Stdout, p.Name)
	ui.Field(os.Stdout, "Email", p.Email)
	ui.Field(os.Stdout, "Position", p.Position)
	ui.Field(os.Stdout, "Record", fmt.Sprintf("%dW %dD %dL over %d matches", p.Wins, p.Draws, p.Losses, p.Matches))
	ui.Field(os.Stdout, "Goals / Assists", fmt.Sprintf("%d / %d", p.Goals, p.Assists))
	ui.Field(os.Stdout, "Cards", fmt.Sprintf("%d yellow, %d red", p.YellowCards, p.RedCards))
	ui.Field(os.Stdout, "Points", ui.Itoa(p.Points))
	ui.Field(os.Stdout, "Aura", ui.Itoa(p.AuraPoints))
	ui.Field(os.Stdout, "Rating", ui.Ftoa(p.RatingAvg))
	if len(p.Achievements) > 0 {
		var trophies, motm int
		for _, a := range p.Achievements {
			if model.IsMOTMToken(a) {
				motm++
			} else {
				trophies++
			}
		}
		ui.Field(os.Stdout, "Achievements", fmt.Sprintf("%d trophies, %d MOTM awards", trophies, motm))
	}
}

func renderPlayersTable(players []model.Player) {
	rows := make([][]string, len(players))
	for i, p := range players {
		rows[i] = []string{p.Name, p.Email, p.Position, ui.Itoa(p.Points), ui.Ftoa(p.RatingAvg)}
	}
	ui.Table(os.Stdout, []string{"Name", "Email", "Position", "Points", "Rating"}, rows)
}

func renderTeam(t model.Team) {
	ui.Title(os.Stdout, t.Name)
	ui.Field(os.Stdout, "Location", t.Location)
	ui.Field(os.Stdout, "Founded", ui.Itoa(t.FoundedYear))
	ui.Field(os.Stdout, "Captain", t.Captain)
	ui.Field(os.Stdout, "Record", fmt.Sprintf("%dW %dD %dL", t.Wins, t.Draws, t.Losses))
	ui.Field(os.Stdout, "Rating", ui.Ftoa(t.RatingAvg))
	ui.Field(os.Stdout, "Squad", strings.Join(t.TeamPlayers, ", "))
}

func renderMatch(m model.Match) {
	ui.Title(os.Stdout, fmt.Sprintf("Match %s (%s)", m.ID, m.Status))
	ui.Field(os.Stdout, "Teams", m.MyTeamID+" vs "+m.OpponentTeamID)
	ui.Field(os.Stdout, "Trophy", m.TrophyID)
	ui.Field(os.Stdout, "Venue", m.Location.Name)
	ui.Field(os.Stdout, "Kickoff", m.StartTime.Format("2006-01-02 15:04"))
	if m.Result != nil {
		ui.Field(os.Stdout, "Score", fmt.Sprintf("%d : %d", m.Result.MyGoals, m.Result.OppGoals))
		if m.Result.Winner != "" {
			ui.Field(os.Stdout, "Winner", m.Result.Winner)
		}
		if m.Result.MOTM != "" {
			ui.Field(os.Stdout, "Man of the match", m.Result.MOTM)
		}
	}
}

// renderOutcome shows the next screen for a dispatched workflow action.
func renderOutcome(out workflow.Outcome) {
	switch out.Screen {
	case workflow.ScreenMatchResponse:
		renderMatchResponseScreen(out.MatchResponse)
	case workflow.ScreenRating:
		renderRatingScreen(out.Rating)
	case workflow.ScreenStats:
		renderStatsScreen(out.Stats)
	default:
		if out.Removed {
			ui.ToastOK(os.Stdout, "Done")
		}
	}
}

// renderMatchResponseScreen shows the invitation from the invited side:
// both rosters, the fee split for the current roster size and the command
// that confirms the selection.
func renderMatchResponseScreen(b *workflow.MatchResponseBundle) {
	ui.Title(os.Stdout, fmt.Sprintf("Match invitation: %s vs %s for %q", b.MyTeam.Name, b.OpponentTeam.Name, b.Trophy.Title))
	ui.Field(os.Stdout, "Venue", b.Match.Location.Name)
	ui.Field(os.Stdout, "Kickoff", b.Match.StartTime.Format("2006-01-02 15:04"))

	split := economy.Split(b.Trophy.Fee, len(b.MyRoster))
	ui.Field(os.Stdout, "Trophy fee", fmt.Sprintf("%d total, %d per team", b.Trophy.Fee, split.TeamShare))
	ui.Dim(os.Stdout, fmt.Sprintf("With all %d squad players selected each owes %d points; the share is recomputed for your actual selection.", len(b.MyRoster), split.PerPlayerShare))

	ui.Title(os.Stdout, "Your squad")
	renderPlayersTable(b.MyRoster)
	ui.Title(os.Stdout, "Opponent selection")
	renderPlayersTable(b.OpponentSelected)

	ui.Dim(os.Stdout, fmt.Sprintf("Confirm with: hub matches respond %s --players a@x.com,b@x.com", b.NotificationID))
	ui.Dim(os.Stdout, fmt.Sprintf("Decline with: hub notifications act %s reject", b.NotificationID))
}

func renderRatingScreen(b *workflow.RatingBundle) {
	ui.Title(os.Stdout, "Rate the opposing players")
	renderPlayersTable(b.Players)
	ui.Dim(os.Stdout, fmt.Sprintf("Submit with: hub players rate --resume %s --rating a@x.com=4 --rating b@x.com=5", b.NotificationID))
}

func renderStatsScreen(b *workflow.StatsBundle) {
	ui.Title(os.Stdout, fmt.Sprintf("Submit stats for %s vs %s", b.ActingTeam.Name, b.OpposingTeam.Name))
	ui.Field(os.Stdout, "Trophy", fmt.Sprintf("%s (win %d%% / lose %d%%, +%d per goal, +%d per assist, +%d MOTM)",
		b.Trophy.Title, b.Trophy.Distribution.Win, b.Trophy.Distribution.Lose,
		b.Trophy.Bonuses.Goal, b.Trophy.Bonuses.Assist, b.Trophy.Bonuses.MOTM))
	ui.Title(os.Stdout, "Your lineup")
	renderPlayersTable(b.ActingRoster)
	ui.Dim(os.Stdout, fmt.Sprintf("Submit with: hub matches submit-stats %s --line a@x.com:2:1:0:0 [--motm a@x.com]", b.NotificationID))
}
