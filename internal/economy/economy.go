// Package economy holds the match fee arithmetic: how a trophy's total fee
// splits between the two teams and across each team's selected players,
// and whether a selection can actually pay its way. Everything here is a
// pure function of (fee, roster, selection) and is recomputed on every
// selection change; roster sizes are small enough that caching would buy
// nothing.
package economy

import "github.com/footballhub/cli/internal/model"

// TeamShare is the half of the trophy fee one team owes.
func TeamShare(totalFee int) int {
	if totalFee < 0 {
		return 0
	}
	return totalFee / 2
}

// PerPlayerShare divides the team share evenly among the selected players.
// The divisor is clamped to 1 so a momentarily empty selection renders a
// harmless nonzero share instead of dividing by zero; callers must still
// require a non-empty selection before confirming.
func PerPlayerShare(totalFee, selectedCount int) int {
	if selectedCount < 1 {
		selectedCount = 1
	}
	return TeamShare(totalFee) / selectedCount
}

// Breakdown is the displayed split for the current selection.
type Breakdown struct {
	TeamShare      int
	PerPlayerShare int
}

// Split computes the displayed breakdown for a selection size.
func Split(totalFee, selectedCount int) Breakdown {
	return Breakdown{
		TeamShare:      TeamShare(totalFee),
		PerPlayerShare: PerPlayerShare(totalFee, selectedCount),
	}
}

// Problem enumerates why a selection cannot be confirmed.
type Problem int

const (
	// ProblemNone means the selection is valid.
	ProblemNone Problem = iota
	// ProblemEmptySelection means no player is selected.
	ProblemEmptySelection
	// ProblemInsufficientPoints means a selected player cannot afford the
	// per-player share.
	ProblemInsufficientPoints
	// ProblemDuplicateParticipant means a selected player also appears in
	// the opposing roster.
	ProblemDuplicateParticipant
)

// Verdict is the full validation result for a selection. Offenders lists
// the emails that tripped the check, for rendering next to the roster.
type Verdict struct {
	Problem   Problem
	Share     Breakdown
	Offenders []string
}

// OK reports whether the confirmation control may be enabled.
func (v Verdict) OK() bool { return v.Problem == ProblemNone }

// UserMessage is the rejection text surfaced on a forced submission
// attempt. Valid selections return "".
func (v Verdict) UserMessage() string {
	switch v.Problem {
	case ProblemEmptySelection:
		return "Select at least one player"
	case ProblemInsufficientPoints:
		return "Some players don't have enough points"
	case ProblemDuplicateParticipant:
		return "Some players are already on the opposing side"
	default:
		return ""
	}
}

// ValidateSelection decides whether the selected players may confirm a
// match for the given total fee. A selection is valid iff it is non-empty,
// every selected player's point balance covers the per-player share, and
// no selected player appears in the opposing roster. Checks run in that
// order and the first failure wins.
func ValidateSelection(totalFee int, selected []model.Player, opposingRoster []string) Verdict {
	v := Verdict{Share: Split(totalFee, len(selected))}

	if len(selected) == 0 {
		v.Problem = ProblemEmptySelection
		return v
	}

	for _, p := range selected {
		if p.Points < v.Share.PerPlayerShare {
			v.Offenders = append(v.Offenders, p.Email)
		}
	}
	if len(v.Offenders) > 0 {
		v.Problem = ProblemInsufficientPoints
		return v
	}

	opposing := make(map[string]struct{}, len(opposingRoster))
	for _, email := range opposingRoster {
		opposing[email] = struct{}{}
	}
	for _, p := range selected {
		if _, dup := opposing[p.Email]; dup {
			v.Offenders = append(v.Offenders, p.Email)
		}
	}
	if len(v.Offenders) > 0 {
		v.Problem = ProblemDuplicateParticipant
	}
	return v
}

// Payout previews the points one side takes home under a trophy's
// distribution, before per-player bonuses. The pool is the full fee; the
// win/lose percentages decide the split.
func Payout(t model.Trophy, won bool) int {
	pct := t.Distribution.Lose
	if won {
		pct = t.Distribution.Win
	}
	return t.Fee * pct / 100
}

// BonusPoints totals the flat bonuses a single stat line earns.
func BonusPoints(t model.Trophy, line model.StatLine, isMOTM bool) int {
	total := line.Goals*t.Bonuses.Goal + line.Assists*t.Bonuses.Assist
	if isMOTM {
		total += t.Bonuses.MOTM
	}
	return total
}
