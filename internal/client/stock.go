package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/erazemk/bloodbank/internal/model"
)

// ListStock returns every stock record.
func (c *Client) ListStock(ctx context.Context) ([]model.StockItem, error) {
	return getList[model.StockItem](ctx, c, "/stock")
}

// CreateStock records a stock intake. Admin only.
func (c *Client) CreateStock(ctx context.Context, in model.NewStock) (*model.StockItem, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var s model.StockItem
	if err := c.Do(ctx, http.MethodPost, "/stock", in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateStockQuantity sets a record's quantity. Admin only.
func (c *Client) UpdateStockQuantity(ctx context.Context, id int64, quantity int) (*model.StockItem, error) {
	if quantity < 0 {
		return nil, &model.ValidationError{Field: "quantity", Message: "must not be negative"}
	}
	var s model.StockItem
	if err := c.Do(ctx, http.MethodPut, fmt.Sprintf("/stock/%d/quantity?quantity=%d", id, quantity), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ExpiringStock returns records with 0 to days days left.
func (c *Client) ExpiringStock(ctx context.Context, days int) ([]model.StockItem, error) {
	return getList[model.StockItem](ctx, c, fmt.Sprintf("/stock/expiring?days=%d", days))
}

// ExpiredStock returns records past their expiry date.
func (c *Client) ExpiredStock(ctx context.Context) ([]model.StockItem, error) {
	return getList[model.StockItem](ctx, c, "/stock/expired")
}

// DiscardExpired removes all expired records. Admin only.
func (c *Client) DiscardExpired(ctx context.Context) (*model.DiscardResult, error) {
	var r model.DiscardResult
	if err := c.Do(ctx, http.MethodPost, "/stock/discard-expired", nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// DiscardStock removes one record. Admin only.
func (c *Client) DiscardStock(ctx context.Context, id int64) (*model.DiscardResult, error) {
	var r model.DiscardResult
	if err := c.Do(ctx, http.MethodPost, fmt.Sprintf("/stock/%d/discard", id), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
