package api

import (
	"context"
	"net/url"

	"github.com/footballhub/cli/internal/model"
)

// TrainerUpsert carries the owner-editable trainer listing fields.
type TrainerUpsert struct {
	ID          string `json:"id,omitempty"` // set on update, empty on create
	Name        string `json:"name"`
	Speciality  string `json:"speciality"`
	Location    string `json:"location"`
	PriceCash   int    `json:"priceCash"`
	PricePoints int    `json:"pricePoints"`
	Available   bool   `json:"available"`
}

// BookingRequest asks a trainer's owner for a session.
type BookingRequest struct {
	TrainerID string `json:"trainerId"`
	Message   string `json:"message,omitempty"`
}

// BookingDecision confirms or declines a training request back to the
// requester.
type BookingDecision struct {
	TrainerID string `json:"trainerId"`
	Requester string `json:"requester"` // player email
	Accept    bool   `json:"accept"`
}

// Trainers lists every trainer.
func (c *Client) Trainers(ctx context.Context) ([]model.Trainer, error) {
	var out []model.Trainer
	err := c.get(ctx, "/trainers", &out)
	return out, err
}

// SearchTrainers filters trainers by free-text query.
func (c *Client) SearchTrainers(ctx context.Context, query string) ([]model.Trainer, error) {
	var out []model.Trainer
	err := c.get(ctx, "/trainers/search?q="+url.QueryEscape(query), &out)
	return out, err
}

// Trainer fetches one trainer by id.
func (c *Client) Trainer(ctx context.Context, id string) (model.Trainer, error) {
	var out model.Trainer
	err := c.get(ctx, "/trainers/"+esc(id), &out)
	return out, err
}

// CreateTrainer lists a new trainer owned by the authenticated player.
func (c *Client) CreateTrainer(ctx context.Context, req TrainerUpsert) (model.Trainer, error) {
	var out model.Trainer
	err := c.post(ctx, "/trainer", req, &out)
	return out, err
}

// UpdateTrainer edits an owned trainer listing.
func (c *Client) UpdateTrainer(ctx context.Context, req TrainerUpsert) (model.Trainer, error) {
	var out model.Trainer
	err := c.put(ctx, "/trainer", req, &out)
	return out, err
}

// DeleteTrainer removes an owned trainer listing.
func (c *Client) DeleteTrainer(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/trainer?id="+url.QueryEscape(id), nil, nil)
}

// BookTrainer sends a training request to the trainer's owner.
func (c *Client) BookTrainer(ctx context.Context, req BookingRequest) error {
	return c.post(ctx, "/book-trainer", req, nil)
}

// ConfirmBooking answers a training request.
func (c *Client) ConfirmBooking(ctx context.Context, dec BookingDecision) error {
	return c.post(ctx, "/trainer-booked", dec, nil)
}
