package views

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/erazemk/bloodbank/internal/client"
	"github.com/erazemk/bloodbank/internal/derived"
	"github.com/erazemk/bloodbank/internal/model"
	"github.com/erazemk/bloodbank/internal/session"
)

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func TestDaysLeft(t *testing.T) {
	today := model.DateOf(now)
	bad, _ := model.ParseDate("garbage")

	tests := []struct {
		date model.Date
		want string
	}{
		{today, "today"},
		{today.AddDays(1), "1 day"},
		{today.AddDays(9), "9 days"},
		{today.AddDays(-1), "1 day ago"},
		{today.AddDays(-4), "4 days ago"},
		{bad, "-"},
	}
	for _, tt := range tests {
		if got := DaysLeft(tt.date, now); got != tt.want {
			t.Errorf("DaysLeft(%s) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestStockTable(t *testing.T) {
	today := model.DateOf(now)
	items := []model.StockItem{
		{ID: 1, BloodGroup: "O+", Quantity: 1200, ExpiryDate: today.AddDays(30)},
		{ID: 2, BloodGroup: "A-", Quantity: 3, ExpiryDate: today.AddDays(-2)},
	}

	var buf bytes.Buffer
	if err := Stock(&buf, items, now); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "STATUS") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "1,200") || !strings.HasSuffix(lines[1], "available") {
		t.Errorf("unexpected first row %q", lines[1])
	}
	if !strings.Contains(lines[2], "2 days ago") || !strings.HasSuffix(lines[2], "expired") {
		t.Errorf("unexpected second row %q", lines[2])
	}
}

func TestEmptyTables(t *testing.T) {
	var buf bytes.Buffer
	Stock(&buf, nil, now)
	Donors(&buf, nil)
	Requests(&buf, nil)
	Hotspots(&buf, nil, now)
	Reports(&buf, nil, now)

	for _, want := range []string{"No blood stock", "No donors", "No blood requests", "No hotspots", "No reports"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("missing %q in %q", want, buf.String())
		}
	}
}

func TestHotspotsRelativeTime(t *testing.T) {
	var buf bytes.Buffer
	err := Hotspots(&buf, []model.Hotspot{
		{ID: 4, Location: "Minto Bridge", Severity: model.SeverityHigh, WaterLevel: 65, LastUpdated: now.Add(-2 * time.Hour)},
	}, now)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "2 hours ago") || !strings.Contains(out, "65%") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSummaryCards(t *testing.T) {
	var buf bytes.Buffer
	StockSummary(&buf, model.StockSummary{TotalUnits: 23, AvailableUnits: 10, ExpiringUnits: 7, ExpiredUnits: 6, AvailableCategories: 4})
	RequestCounts(&buf, derived.RequestCounts{Pending: 2, Approved: 1})
	out := buf.String()
	for _, want := range []string{"23", "Expiring soon:", "Pending: 2  Approved: 1  Rejected: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestCharts(t *testing.T) {
	var buf bytes.Buffer
	Rainfall(&buf, []model.RainfallPoint{
		{Date: model.DateOf(now).AddDays(-1), Millimetres: 0},
		{Date: model.DateOf(now), Millimetres: 42.5},
	})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("unexpected chart %q", buf.String())
	}
	if strings.Contains(lines[0], "#") {
		t.Errorf("dry day should have no bar: %q", lines[0])
	}
	if !strings.Contains(lines[1], strings.Repeat("#", barWidth)) || !strings.Contains(lines[1], "42.5 mm") {
		t.Errorf("peak day should have a full bar: %q", lines[1])
	}

	buf.Reset()
	Predictions(&buf, []model.Prediction{
		{HotspotID: 1, Location: "ITO", CurrentSeverity: model.SeverityHigh, PredictedSeverity: model.SeverityCritical},
		{HotspotID: 2, Location: "Bridge", CurrentSeverity: model.SeverityLow, PredictedSeverity: model.SeverityLow},
	})
	if strings.Count(buf.String(), "^") != 1 {
		t.Errorf("expected one escalation marker in %q", buf.String())
	}
}

func TestToast(t *testing.T) {
	httpErr := func(status int, code string) error {
		return fmt.Errorf("PUT /requests/1/status: %w", &client.HTTPError{Status: status, Code: code, Message: "ignored"})
	}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"insufficient stock", httpErr(409, model.CodeInsufficientStock), "Cannot approve request: Insufficient blood stock available"},
		{"missing group", httpErr(409, model.CodeBloodGroupMissing), "Cannot approve request: Blood group not available in stock"},
		{"processed", httpErr(409, model.CodeInvalidTransition), "Cannot approve request: request has already been processed"},
		{"unauthorized", httpErr(401, model.CodeUnauthorized), "Authentication failed. Please login again."},
		{"forbidden", httpErr(403, model.CodeForbidden), "You don't have permission to approve request."},
		{"bad request", httpErr(400, model.CodeValidation), "Invalid request data. Please check all fields."},
		{"network", fmt.Errorf("%w: GET /stock: refused", client.ErrNetwork), "Failed to approve request. Please check your connection."},
		{"validation", &model.ValidationError{Field: "quantity", Message: "must be positive"}, "Invalid data: quantity: must be positive"},
		{"offline login", session.ErrInvalidCredentials, "Invalid email or password"},
		{"server error", httpErr(500, model.CodeInternal), "Failed to approve request. Please try again."},
		{"unknown", errors.New("boom"), "Failed to approve request. Please try again."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Toast("approve request", tt.err); got != tt.want {
				t.Errorf("Toast = %q, want %q", got, tt.want)
			}
		})
	}
}
