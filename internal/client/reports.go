package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/erazemk/bloodbank/internal/model"
)

// ListReports returns all citizen reports, newest first.
func (c *Client) ListReports(ctx context.Context) ([]model.Report, error) {
	return getList[model.Report](ctx, c, "/reports")
}

// ReportsByStatus returns reports in one status.
func (c *Client) ReportsByStatus(ctx context.Context, status model.ReportStatus) ([]model.Report, error) {
	if _, err := model.ParseReportStatus(string(status)); err != nil {
		return nil, err
	}
	return getList[model.Report](ctx, c, "/reports/status/"+url.PathEscape(string(status)))
}

// CreateReport submits a water-logging report.
func (c *Client) CreateReport(ctx context.Context, in model.NewReport) (*model.Report, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var r model.Report
	if err := c.Do(ctx, http.MethodPost, "/reports", in, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateReportStatus moves a report through review. Admin only.
func (c *Client) UpdateReportStatus(ctx context.Context, id int64, status model.ReportStatus) (*model.Report, error) {
	if _, err := model.ParseReportStatus(string(status)); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/reports/%d/status?status=%s", id, url.QueryEscape(string(status)))
	var r model.Report
	if err := c.Do(ctx, http.MethodPut, path, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// UploadReportPhoto attaches a photo to a report. The backend sniffs the
// format and stores a downscaled JPEG.
func (c *Client) UploadReportPhoto(ctx context.Context, id int64, photo io.Reader, contentType string) error {
	return c.send(ctx, call{
		method:      http.MethodPut,
		path:        fmt.Sprintf("/report-images/%d", id),
		body:        photo,
		contentType: contentType,
	})
}
