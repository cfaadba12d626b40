package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/filamvp/card-tracker/pkg/types"
)

// CardsResponse wraps a paginated cards response.
type CardsResponse struct {
	Cards []domain.Card `json:"cards"`
	Total int           `json:"total"`
}

// ListCardsParams defines query parameters for card queries.
type ListCardsParams struct {
	Status  string
	Kind    string
	Team    string
	Set     string
	Search  string
	Limit   int
	Offset  int
	OrderBy string
}

// ListCards returns cards matching the given parameters.
func (c *Client) ListCards(ctx context.Context, params *ListCardsParams) (*CardsResponse, error) {
	q := url.Values{}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.Kind != "" {
		q.Set("kind", params.Kind)
	}
	if params.Team != "" {
		q.Set("team", params.Team)
	}
	if params.Set != "" {
		q.Set("set", params.Set)
	}
	if params.Search != "" {
		q.Set("q", params.Search)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/v1/cards"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp CardsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCard returns a single card by ID.
func (c *Client) GetCard(ctx context.Context, id string) (*domain.Card, error) {
	var card domain.Card
	if err := c.get(ctx, fmt.Sprintf("/api/v1/cards/%s", id), &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// CreateCard creates one card and returns it with server-assigned fields.
func (c *Client) CreateCard(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	var created domain.Card
	if err := c.post(ctx, "/api/v1/cards", card, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCard replaces a card's fields by ID.
func (c *Client) UpdateCard(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	var updated domain.Card
	if err := c.put(ctx, fmt.Sprintf("/api/v1/cards/%s", card.ID), card, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCard deletes a card by ID.
func (c *Client) DeleteCard(ctx context.Context, id string) error {
	return c.del(ctx, fmt.Sprintf("/api/v1/cards/%s", id), nil)
}

// NextStatus advances a card one step in the selling cycle.
func (c *Client) NextStatus(ctx context.Context, id string) (*domain.Card, error) {
	var card domain.Card
	if err := c.post(ctx, fmt.Sprintf("/api/v1/cards/%s/next-status", id), nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}
