package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/erazemk/bloodbank/internal/model"
)

// ListDonors returns all registered donors.
func (c *Client) ListDonors(ctx context.Context) ([]model.Donor, error) {
	return getList[model.Donor](ctx, c, "/donors")
}

// GetDonor returns one donor.
func (c *Client) GetDonor(ctx context.Context, id int64) (*model.Donor, error) {
	var d model.Donor
	if err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/donors/%d", id), nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateDonor registers a donor.
func (c *Client) CreateDonor(ctx context.Context, in model.NewDonor) (*model.Donor, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var d model.Donor
	if err := c.Do(ctx, http.MethodPost, "/donors", in, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateDonor replaces a donor's details. Admin only.
func (c *Client) UpdateDonor(ctx context.Context, id int64, in model.NewDonor) (*model.Donor, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var d model.Donor
	if err := c.Do(ctx, http.MethodPut, fmt.Sprintf("/donors/%d", id), in, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// DeleteDonor removes a donor. Admin only.
func (c *Client) DeleteDonor(ctx context.Context, id int64) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/donors/%d", id), nil, nil)
}
