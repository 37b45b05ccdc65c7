package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/erazemk/bloodbank/internal/model"
)

// ListRequests returns all blood requests.
func (c *Client) ListRequests(ctx context.Context) ([]model.BloodRequest, error) {
	return getList[model.BloodRequest](ctx, c, "/requests")
}

// CreateRequest submits a blood request.
func (c *Client) CreateRequest(ctx context.Context, in model.NewBloodRequest) (*model.BloodRequest, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var r model.BloodRequest
	if err := c.Do(ctx, http.MethodPost, "/requests", in, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateRequestStatus approves or rejects a pending request. Admin only.
// Approval can fail with the insufficient_stock or blood_group_not_found codes.
func (c *Client) UpdateRequestStatus(ctx context.Context, id int64, status model.RequestStatus) (*model.BloodRequest, error) {
	if _, err := model.ParseRequestStatus(string(status)); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/requests/%d/status?status=%s", id, url.QueryEscape(string(status)))
	var r model.BloodRequest
	if err := c.Do(ctx, http.MethodPut, path, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
