package client

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/erazemk/bloodbank/internal/api"
	"github.com/erazemk/bloodbank/internal/auth"
	"github.com/erazemk/bloodbank/internal/clock"
	"github.com/erazemk/bloodbank/internal/db"
	"github.com/erazemk/bloodbank/internal/model"
	"github.com/erazemk/bloodbank/internal/store"
)

// TestAgainstDevServer drives the real router end to end.
func TestAgainstDevServer(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	database := db.NewTestDB(t)
	srv := httptest.NewServer(api.NewRouter(database, "secret", clock.NewFixed(now)))
	t.Cleanup(srv.Close)

	ctx := context.Background()
	hash, _ := auth.HashPassword("adminpass")
	if _, err := store.CreateUser(ctx, database, "admin@example.com", hash, model.RoleAdmin); err != nil {
		t.Fatal(err)
	}

	tokens := &memTokens{}
	c := New(srv.URL+"/api", tokens)

	s, err := c.Login(ctx, model.Credentials{Email: "admin@example.com", Password: "adminpass"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	tokens.token = s.Token

	if ok, err := c.ValidateSession(ctx); err != nil || !ok {
		t.Fatalf("ValidateSession = %v, %v", ok, err)
	}

	today := model.DateOf(now)
	if _, err := c.CreateStock(ctx, model.NewStock{BloodGroup: "O+", Quantity: 3, ExpiryDate: today.AddDays(2)}); err != nil {
		t.Fatalf("CreateStock: %v", err)
	}
	if _, err := c.CreateStock(ctx, model.NewStock{BloodGroup: "O+", Quantity: 4, ExpiryDate: today.AddDays(-1)}); err != nil {
		t.Fatalf("CreateStock: %v", err)
	}

	stock, err := c.ListStock(ctx)
	if err != nil || len(stock) != 2 {
		t.Fatalf("ListStock = %v, %v", stock, err)
	}

	req, err := c.CreateRequest(ctx, model.NewBloodRequest{
		PatientName: "Marta", Age: 40, BloodGroup: "O+", UnitsRequired: 5, HospitalName: "SB Celje",
	})
	if err != nil {
		t.Fatalf("CreateRequest: %v", err)
	}

	// Expired units do not count towards approval.
	_, err = c.UpdateRequestStatus(ctx, req.ID, model.RequestApproved)
	if !IsCode(err, model.CodeInsufficientStock) {
		t.Errorf("expected insufficient_stock, got %v", err)
	}

	result, err := c.DiscardExpired(ctx)
	if err != nil || result.Units != 4 {
		t.Errorf("DiscardExpired = %+v, %v", result, err)
	}

	r, err := c.CreateReport(ctx, model.NewReport{Location: "Tivoli underpass", Severity: model.SeverityMedium})
	if err != nil {
		t.Fatalf("CreateReport: %v", err)
	}
	var buf bytes.Buffer
	png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8)))
	if err := c.UploadReportPhoto(ctx, r.ID, &buf, "image/png"); err != nil {
		t.Errorf("UploadReportPhoto: %v", err)
	}
	reports, err := c.ReportsByStatus(ctx, model.ReportPending)
	if err != nil || len(reports) != 1 || !reports[0].HasImage {
		t.Errorf("ReportsByStatus = %+v, %v", reports, err)
	}

	// A signed-out token stops working.
	signedIn := tokens.Token()
	if err := c.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := c.ValidateSession(ctx); !errors.Is(err, ErrAuthRequired) {
		t.Errorf("expected revoked token to need auth, got %v", err)
	}

	// A tampered token is rejected and clears the session.
	tokens.token = signedIn + "x"
	if _, err := c.DashboardStats(ctx); !errors.Is(err, ErrAuthRequired) {
		t.Errorf("expected ErrAuthRequired, got %v", err)
	}
	if tokens.Token() != "" {
		t.Error("expected session cleared")
	}
}
