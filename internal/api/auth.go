package api

import (
	"context"

	"github.com/footballhub/cli/internal/model"
)

// Credentials is the login form payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest creates a new player account.
type SignupRequest struct {
	Email    string         `json:"email"`
	Name     string         `json:"name"`
	Password string         `json:"password"`
	Position string         `json:"position"`
	Skills   map[string]int `json:"skills,omitempty"`
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Name     string         `json:"name,omitempty"`
	Position string         `json:"position,omitempty"`
	Skills   map[string]int `json:"skills,omitempty"`
}

// Login establishes a cookie session; the returned player is the freshly
// authenticated profile.
func (c *Client) Login(ctx context.Context, creds Credentials) (model.Player, error) {
	var p model.Player
	err := c.post(ctx, "/login", creds, &p)
	return p, err
}

// Signup registers a new player and logs it in.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (model.Player, error) {
	var p model.Player
	err := c.post(ctx, "/signup", req, &p)
	return p, err
}

// Logout invalidates the server-side session.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/logout", nil, nil)
}

// Profile fetches the authenticated player.
func (c *Client) Profile(ctx context.Context) (model.Player, error) {
	var p model.Player
	err := c.get(ctx, "/profile", &p)
	return p, err
}

// UpdateProfile edits the authenticated player.
func (c *Client) UpdateProfile(ctx context.Context, upd ProfileUpdate) (model.Player, error) {
	var p model.Player
	err := c.put(ctx, "/profile", upd, &p)
	return p, err
}

// DeleteProfile removes the account entirely.
func (c *Client) DeleteProfile(ctx context.Context) error {
	return c.delete(ctx, "/profile")
}
