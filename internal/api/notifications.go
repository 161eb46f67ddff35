package api

import (
	"context"

	"github.com/footballhub/cli/internal/model"
)

// Notifications fetches a player's notification list. For the acting player
// the same list arrives embedded in the profile; this endpoint exists for
// cross-player delivery.
func (c *Client) Notifications(ctx context.Context, email string) ([]model.Notification, error) {
	var out []model.Notification
	err := c.get(ctx, "/players/"+esc(email)+"/notifications", &out)
	return out, err
}

// Notify appends a notification to another player's list, e.g. a booking
// confirmation back to a requester.
func (c *Client) Notify(ctx context.Context, email string, n model.Notification) error {
	return c.post(ctx, "/players/"+esc(email)+"/notifications", n, nil)
}

// DeleteNotification removes a notification record server-side. Callers
// reconcile their local copy separately via model.RemoveNotification.
func (c *Client) DeleteNotification(ctx context.Context, email, id string) error {
	return c.delete(ctx, "/players/"+esc(email)+"/notifications/"+esc(id))
}
