package api

import (
	"context"
	"net/url"

	"github.com/footballhub/cli/internal/model"
)

// ItemUpsert lists an item for sale.
type ItemUpsert struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	PriceCash   int    `json:"priceCash"`
	PricePoints int    `json:"pricePoints"`
}

// PurchaseRequest asks an item's owner to sell.
type PurchaseRequest struct {
	ItemID  string `json:"itemId"`
	Message string `json:"message,omitempty"`
}

// SaleDecision confirms or declines an order request back to the buyer.
type SaleDecision struct {
	ItemID string `json:"itemId"`
	Buyer  string `json:"buyer"` // player email
	Accept bool   `json:"accept"`
}

// Items lists every item for sale.
func (c *Client) Items(ctx context.Context) ([]model.StoreItem, error) {
	var out []model.StoreItem
	err := c.get(ctx, "/sell-items", &out)
	return out, err
}

// SearchItems filters store items by free-text query.
func (c *Client) SearchItems(ctx context.Context, query string) ([]model.StoreItem, error) {
	var out []model.StoreItem
	err := c.get(ctx, "/sell-items/search?q="+url.QueryEscape(query), &out)
	return out, err
}

// ItemsByOwner lists one player's items.
func (c *Client) ItemsByOwner(ctx context.Context, email string) ([]model.StoreItem, error) {
	var out []model.StoreItem
	err := c.get(ctx, "/sell-items/"+esc(email), &out)
	return out, err
}

// SellItem lists a new item owned by the authenticated player.
func (c *Client) SellItem(ctx context.Context, req ItemUpsert) (model.StoreItem, error) {
	var out model.StoreItem
	err := c.post(ctx, "/sell-item", req, &out)
	return out, err
}

// DeleteItem removes an owned listing. The backend models deletion as a
// POST on the item resource.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.post(ctx, "/sell-items/"+esc(id), nil, nil)
}

// BuyItem sends a purchase request to the item's owner.
func (c *Client) BuyItem(ctx context.Context, req PurchaseRequest) error {
	return c.post(ctx, "/buy-item", req, nil)
}

// ConfirmSale answers an order request.
func (c *Client) ConfirmSale(ctx context.Context, dec SaleDecision) error {
	return c.post(ctx, "/item-sold", dec, nil)
}
