package client

import (
	"context"
	"net/http"

	"github.com/erazemk/bloodbank/internal/model"
)

// Analytics returns the water-logging summary.
func (c *Client) Analytics(ctx context.Context) (*model.Analytics, error) {
	var a model.Analytics
	if err := c.Do(ctx, http.MethodGet, "/analytics", nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Rainfall returns daily rainfall for the last week, oldest first.
func (c *Client) Rainfall(ctx context.Context) ([]model.RainfallPoint, error) {
	return getList[model.RainfallPoint](ctx, c, "/analytics/rainfall")
}

// RecordRainfall adds a rainfall reading. Admin only.
func (c *Client) RecordRainfall(ctx context.Context, p model.RainfallPoint) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return c.Do(ctx, http.MethodPost, "/analytics/rainfall", p, nil)
}

// Distribution returns hotspot counts per severity.
func (c *Client) Distribution(ctx context.Context) ([]model.DistributionEntry, error) {
	return getList[model.DistributionEntry](ctx, c, "/analytics/distribution")
}

// Predictions returns the expected severity of every hotspot.
func (c *Client) Predictions(ctx context.Context) ([]model.Prediction, error) {
	return getList[model.Prediction](ctx, c, "/analytics/predictions")
}
