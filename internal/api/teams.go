package api

import (
	"context"

	"github.com/footballhub/cli/internal/model"
)

// TeamUpsert carries the captain-editable team fields.
type TeamUpsert struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	FoundedYear int    `json:"foundedYear"`
	LogoURL     string `json:"logoUrl,omitempty"`
}

// Teams lists every team.
func (c *Client) Teams(ctx context.Context) ([]model.Team, error) {
	var out []model.Team
	err := c.get(ctx, "/teams", &out)
	return out, err
}

// Team fetches one team by id.
func (c *Client) Team(ctx context.Context, id string) (model.Team, error) {
	var out model.Team
	err := c.get(ctx, "/teams/"+esc(id), &out)
	return out, err
}

// CreateTeam founds a team with the authenticated player as captain.
func (c *Client) CreateTeam(ctx context.Context, req TeamUpsert) (model.Team, error) {
	var out model.Team
	err := c.post(ctx, "/teams", req, &out)
	return out, err
}

// UpdateTeam edits a team; the backend enforces captainship.
func (c *Client) UpdateTeam(ctx context.Context, id string, req TeamUpsert) (model.Team, error) {
	var out model.Team
	err := c.put(ctx, "/teams/"+esc(id), req, &out)
	return out, err
}

// DeleteTeam disbands a team.
func (c *Client) DeleteTeam(ctx context.Context, id string) error {
	return c.delete(ctx, "/teams/"+esc(id))
}

// RequestToJoin asks the team's captain for membership.
func (c *Client) RequestToJoin(ctx context.Context, teamID string) error {
	return c.post(ctx, "/teams/"+esc(teamID)+"/request", nil, nil)
}

// DecideJoinRequest lets the captain approve or reject a pending join
// request from the given player.
func (c *Client) DecideJoinRequest(ctx context.Context, teamID, requester string, approve bool) error {
	return c.put(ctx, "/teams/"+esc(teamID)+"/requests/"+esc(requester), decision{Approve: approve}, nil)
}

// InvitePlayer invites a player onto the team.
func (c *Client) InvitePlayer(ctx context.Context, teamID, playerEmail string) error {
	return c.post(ctx, "/teams/"+esc(teamID)+"/invite/"+esc(playerEmail), nil, nil)
}

// LeaveTeam removes the authenticated player from the team roster.
func (c *Client) LeaveTeam(ctx context.Context, teamID string) error {
	return c.delete(ctx, "/teams/"+esc(teamID)+"/leave")
}
