package api

import (
	"context"
	"net/url"
	"time"

	"github.com/footballhub/cli/internal/model"
)

// MatchCreate schedules a match against an opponent team for a trophy. The
// creating captain's selected players go in MyPlayers; the opponent picks
// theirs when responding to the invitation.
type MatchCreate struct {
	MyTeamID       string      `json:"myTeamId"`
	OpponentTeamID string      `json:"opponentTeamId"`
	TrophyID       string      `json:"trophyId"`
	Location       model.Venue `json:"location"`
	StartTime      time.Time   `json:"startTime"`
	EndTime        time.Time   `json:"endTime"`
	MyPlayers      []string    `json:"myPlayers"`
}

// MatchResponse answers a match invitation. Players is required on accept
// and ignored on reject.
type MatchResponse struct {
	Accept  bool     `json:"accept"`
	Players []string `json:"players,omitempty"`
}

// StatsSubmission uploads one side's stat lines after the match completed.
type StatsSubmission struct {
	TeamID string           `json:"teamId"`
	Lines  []model.StatLine `json:"lines"`
	MOTM   string           `json:"motm,omitempty"` // nominated man of the match, player email
}

// Matches lists matches, optionally filtered by status.
func (c *Client) Matches(ctx context.Context, status string) ([]model.Match, error) {
	path := "/matches"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var out []model.Match
	err := c.get(ctx, path, &out)
	return out, err
}

// Match fetches one match by id.
func (c *Client) Match(ctx context.Context, id string) (model.Match, error) {
	var out model.Match
	err := c.get(ctx, "/matches/"+esc(id), &out)
	return out, err
}

// CreateMatch schedules a match and sends the invitation to the opponent
// captain.
func (c *Client) CreateMatch(ctx context.Context, req MatchCreate) (model.Match, error) {
	var out model.Match
	err := c.post(ctx, "/match", req, &out)
	return out, err
}

// RespondToMatch accepts or rejects a match invitation.
func (c *Client) RespondToMatch(ctx context.Context, id string, resp MatchResponse) error {
	return c.put(ctx, "/matches/"+esc(id)+"/response", resp, nil)
}

// FinalizeMatch submits a side's stats; once both sides have submitted, the
// backend settles the trophy and moves the match to its final status.
func (c *Client) FinalizeMatch(ctx context.Context, id string, sub StatsSubmission) (model.Match, error) {
	var out model.Match
	err := c.post(ctx, "/matches/"+esc(id)+"/finalize", sub, &out)
	return out, err
}
