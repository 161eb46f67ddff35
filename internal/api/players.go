package api

import (
	"context"
	"net/url"

	"github.com/footballhub/cli/internal/model"
)

// RatingSubmission rates the listed players after a match. Scores are 1-5.
type RatingSubmission struct {
	MatchID string         `json:"matchId"`
	TeamID  string         `json:"teamId"`
	Ratings map[string]int `json:"ratings"` // email -> score
}

// Players lists every registered player.
func (c *Client) Players(ctx context.Context) ([]model.Player, error) {
	var out []model.Player
	err := c.get(ctx, "/players", &out)
	return out, err
}

// SearchPlayers filters players by free-text query.
func (c *Client) SearchPlayers(ctx context.Context, query string) ([]model.Player, error) {
	var out []model.Player
	err := c.get(ctx, "/players/search?q="+url.QueryEscape(query), &out)
	return out, err
}

// Player fetches one player by email.
func (c *Client) Player(ctx context.Context, email string) (model.Player, error) {
	var out model.Player
	err := c.get(ctx, "/players/"+esc(email), &out)
	return out, err
}

// RatePlayers submits post-match opponent ratings.
func (c *Client) RatePlayers(ctx context.Context, sub RatingSubmission) error {
	return c.post(ctx, "/players/rate", sub, nil)
}

// DecideTeamInvitation answers a pending team invitation on the
// authenticated player's profile.
func (c *Client) DecideTeamInvitation(ctx context.Context, teamID string, approve bool) error {
	return c.put(ctx, "/profile/requests/"+esc(teamID), decision{Approve: approve}, nil)
}

// decision is the shared approve/reject payload.
type decision struct {
	Approve bool `json:"approve"`
}
