package economy_test

import (
	"testing"

	"github.com/footballhub/cli/internal/economy"
	"github.com/footballhub/cli/internal/model"
)

func players(points ...int) []model.Player {
	out := make([]model.Player, len(points))
	for i, p := range points {
		out[i] = model.Player{Email: string(rune('a'+i)) + "@x.com", Points: p}
	}
	return out
}

func TestSplit_Invariants(t *testing.T) {
	cases := []struct {
		name          string
		fee, selected int
		wantTeam      int
		wantPerPlayer int
	}{
		{"even split", 1000, 4, 500, 125},
		{"odd fee floors", 1001, 4, 500, 125},
		{"single player", 1000, 1, 500, 500},
		{"zero fee", 0, 3, 0, 0},
		{"empty selection clamps divisor", 1000, 0, 500, 500},
		{"negative count clamps divisor", 1000, -2, 500, 500},
		{"share floors", 100, 3, 50, 16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := economy.Split(tc.fee, tc.selected)
			if b.TeamShare != tc.wantTeam {
				t.Fatalf("team share = %d, want %d", b.TeamShare, tc.wantTeam)
			}
			if b.PerPlayerShare != tc.wantPerPlayer {
				t.Fatalf("per-player share = %d, want %d", b.PerPlayerShare, tc.wantPerPlayer)
			}
			if b.TeamShare < 0 || b.PerPlayerShare < 0 {
				t.Fatalf("shares must be non-negative: %+v", b)
			}
			if b.PerPlayerShare > b.TeamShare {
				t.Fatalf("per-player share %d exceeds team share %d", b.PerPlayerShare, b.TeamShare)
			}
		})
	}
}

func TestValidateSelection_EmptyIsAlwaysInvalid(t *testing.T) {
	for _, fee := range []int{0, 10, 1000} {
		v := economy.ValidateSelection(fee, nil, nil)
		if v.OK() {
			t.Fatalf("empty selection must be invalid at fee %d", fee)
		}
		if v.Problem != economy.ProblemEmptySelection {
			t.Fatalf("problem = %v, want empty selection", v.Problem)
		}
	}
}

func TestValidateSelection_Affordability(t *testing.T) {
	// fee=1000, 4 players -> teamShare=500, perPlayerShare=125
	sel := players(200, 200, 200, 200)
	v := economy.ValidateSelection(1000, sel, nil)
	if !v.OK() {
		t.Fatalf("all players afford 125 with 200 points, got problem %v", v.Problem)
	}
	if v.Share.TeamShare != 500 || v.Share.PerPlayerShare != 125 {
		t.Fatalf("unexpected split %+v", v.Share)
	}

	// Same but one player short on points.
	sel = players(200, 200, 200, 100)
	v = economy.ValidateSelection(1000, sel, nil)
	if v.OK() {
		t.Fatal("player with 100 points cannot afford 125")
	}
	if v.Problem != economy.ProblemInsufficientPoints {
		t.Fatalf("problem = %v, want insufficient points", v.Problem)
	}
	if len(v.Offenders) != 1 || v.Offenders[0] != sel[3].Email {
		t.Fatalf("offenders = %v, want just %s", v.Offenders, sel[3].Email)
	}
	if v.UserMessage() != "Some players don't have enough points" {
		t.Fatalf("unexpected message %q", v.UserMessage())
	}
}

func TestValidateSelection_ExactBalancePasses(t *testing.T) {
	sel := players(125, 125)
	if v := economy.ValidateSelection(500, sel, nil); !v.OK() {
		t.Fatalf("points == share must pass, got %v", v.Problem)
	}
}

func TestValidateSelection_DuplicateParticipantGuard(t *testing.T) {
	sel := []model.Player{
		{Email: "p1@x.com", Points: 1000},
		{Email: "p2@x.com", Points: 1000},
	}
	opposing := []string{"p9@x.com", "p1@x.com"}

	v := economy.ValidateSelection(100, sel, opposing)
	if v.OK() {
		t.Fatal("duplicate participant must invalidate the selection even when affordability passes")
	}
	if v.Problem != economy.ProblemDuplicateParticipant {
		t.Fatalf("problem = %v, want duplicate participant", v.Problem)
	}
	if len(v.Offenders) != 1 || v.Offenders[0] != "p1@x.com" {
		t.Fatalf("offenders = %v", v.Offenders)
	}
}

func TestPayout(t *testing.T) {
	trophy := model.Trophy{
		Fee:          1000,
		Distribution: model.TrophyDistribution{Win: 70, Lose: 30},
		Bonuses:      model.TrophyBonuses{Goal: 10, Assist: 5, MOTM: 50},
	}
	if got := economy.Payout(trophy, true); got != 700 {
		t.Fatalf("winner payout = %d, want 700", got)
	}
	if got := economy.Payout(trophy, false); got != 300 {
		t.Fatalf("loser payout = %d, want 300", got)
	}

	line := model.StatLine{Player: "p1@x.com", Goals: 2, Assists: 1}
	if got := economy.BonusPoints(trophy, line, false); got != 25 {
		t.Fatalf("bonus = %d, want 25", got)
	}
	if got := economy.BonusPoints(trophy, line, true); got != 75 {
		t.Fatalf("bonus with MOTM = %d, want 75", got)
	}
}
