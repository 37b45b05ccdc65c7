package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/erazemk/bloodbank/internal/model"
)

// ListHotspots returns all hotspots, worst water level first.
func (c *Client) ListHotspots(ctx context.Context) ([]model.Hotspot, error) {
	return getList[model.Hotspot](ctx, c, "/hotspots")
}

// CreateHotspot adds a hotspot. Admin only.
func (c *Client) CreateHotspot(ctx context.Context, in model.Hotspot) (*model.Hotspot, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var h model.Hotspot
	if err := c.Do(ctx, http.MethodPost, "/hotspots", in, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// UpdateHotspot replaces a hotspot's details. Admin only.
func (c *Client) UpdateHotspot(ctx context.Context, id int64, in model.Hotspot) (*model.Hotspot, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var h model.Hotspot
	if err := c.Do(ctx, http.MethodPut, fmt.Sprintf("/hotspots/%d", id), in, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// DeleteHotspot removes a hotspot. Admin only.
func (c *Client) DeleteHotspot(ctx context.Context, id int64) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/hotspots/%d", id), nil, nil)
}
