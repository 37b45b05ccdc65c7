package client

import (
	"context"
	"net/http"

	"github.com/erazemk/bloodbank/internal/model"
)

// DashboardStats returns the home page counters.
func (c *Client) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var s model.DashboardStats
	if err := c.Do(ctx, http.MethodGet, "/dashboard/stats", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Health returns the backend health check.
func (c *Client) Health(ctx context.Context) (*model.Health, error) {
	var h model.Health
	if err := c.Do(ctx, http.MethodGet, "/dashboard/health", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}
