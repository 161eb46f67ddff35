package api

import (
	"context"

	"github.com/footballhub/cli/internal/model"
)

// Trophies lists every trophy available to play for.
func (c *Client) Trophies(ctx context.Context) ([]model.Trophy, error) {
	var out []model.Trophy
	err := c.get(ctx, "/trophies", &out)
	return out, err
}

// Trophy fetches one trophy by id.
func (c *Client) Trophy(ctx context.Context, id string) (model.Trophy, error) {
	var out model.Trophy
	err := c.get(ctx, "/trophies/"+esc(id), &out)
	return out, err
}

// Leaderboard fetches the global player ranking.
func (c *Client) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	var out []model.LeaderboardEntry
	err := c.get(ctx, "/leaderboard", &out)
	return out, err
}

// Stats fetches the global aggregate counters.
func (c *Client) Stats(ctx context.Context) (model.GlobalStats, error) {
	var out model.GlobalStats
	err := c.get(ctx, "/stats", &out)
	return out, err
}
