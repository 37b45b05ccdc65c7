package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/erazemk/bloodbank/internal/auth"
	"github.com/erazemk/bloodbank/internal/clock"
	"github.com/erazemk/bloodbank/internal/db"
	"github.com/erazemk/bloodbank/internal/model"
	"github.com/erazemk/bloodbank/internal/store"
)

const testJWTSecret = "test-secret"

var testNow = time.Date(2026, 10, 19, 14, 0, 0, 0, time.UTC)

type testServer struct {
	*httptest.Server
	db         *sql.DB
	adminToken string
	userToken  string
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	database := db.NewTestDB(t)
	router := NewRouter(database, testJWTSecret, clock.NewFixed(testNow))
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	ts := &testServer{Server: server, db: database}

	// Create admin user directly, log in over HTTP.
	ctx := context.Background()
	hash, _ := auth.HashPassword("password1")
	if _, err := store.CreateUser(ctx, database, "admin@example.com", hash, model.RoleAdmin); err != nil {
		t.Fatalf("creating admin: %v", err)
	}

	var s model.Session
	resp := ts.do(t, "POST", "/api/auth/login", "", model.Credentials{Email: "admin@example.com", Password: "password1"}, &s)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d", resp.StatusCode)
	}
	if s.Token == "" || s.Role != model.RoleAdmin {
		t.Fatalf("unexpected admin session %+v", s)
	}
	ts.adminToken = s.Token

	resp = ts.do(t, "POST", "/api/auth/signup", "", model.Credentials{Email: "user@example.com", Password: "password2"}, &s)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup failed: %d", resp.StatusCode)
	}
	ts.userToken = s.Token

	return ts
}

func authRequest(method, url, token string, body any) (*http.Request, error) {
	var bodyReader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(data)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do sends a request and decodes the response into out when out is non-nil.
func (ts *testServer) do(t *testing.T, method, path, token string, body, out any) *http.Response {
	t.Helper()
	req, err := authRequest(method, ts.URL+path, token, body)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decoding %s %s: %v", method, path, err)
		}
	}
	return resp
}

func (ts *testServer) addStock(t *testing.T, group string, quantity, days int) *model.StockItem {
	t.Helper()
	s, err := store.CreateStock(context.Background(), ts.db, model.NewStock{
		BloodGroup: group,
		Quantity:   quantity,
		ExpiryDate: model.DateOf(testNow).AddDays(days),
	})
	if err != nil {
		t.Fatalf("CreateStock: %v", err)
	}
	return s
}

func TestLoginEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	var body model.ErrorBody
	resp := ts.do(t, "POST", "/api/auth/login", "", model.Credentials{Email: "admin@example.com", Password: "wrong"}, &body)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad password, got %d", resp.StatusCode)
	}
	if body.Code != model.CodeInvalidLogin {
		t.Errorf("expected code %s, got %q", model.CodeInvalidLogin, body.Code)
	}

	resp = ts.do(t, "POST", "/api/auth/login", "", model.Credentials{Email: "not-an-email", Password: "x"}, &body)
	if resp.StatusCode != http.StatusBadRequest || body.Code != model.CodeValidation {
		t.Errorf("expected 400 validation_failed, got %d %q", resp.StatusCode, body.Code)
	}
}

func TestSignupEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	var body model.ErrorBody
	resp := ts.do(t, "POST", "/api/auth/signup", "", model.Credentials{Email: "user@example.com", Password: "password3"}, &body)
	if resp.StatusCode != http.StatusConflict || body.Code != model.CodeEmailTaken {
		t.Errorf("expected 409 email_taken, got %d %q", resp.StatusCode, body.Code)
	}

	resp = ts.do(t, "POST", "/api/auth/signup", "", model.Credentials{Email: "new@example.com", Password: "short"}, &body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for short password, got %d", resp.StatusCode)
	}
}

func TestMeAndValidate(t *testing.T) {
	ts := setupTestServer(t)

	var me model.Session
	resp := ts.do(t, "GET", "/api/auth/me", ts.userToken, nil, &me)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if me.Email != "user@example.com" || me.Role != model.RoleUser || me.Token != "" {
		t.Errorf("unexpected me %+v", me)
	}

	var valid map[string]bool
	ts.do(t, "GET", "/api/auth/validate", ts.userToken, nil, &valid)
	if !valid["valid"] {
		t.Errorf("expected valid token")
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	ts := setupTestServer(t)

	var msg model.Message
	resp := ts.do(t, "POST", "/api/auth/logout", ts.userToken, nil, &msg)
	if resp.StatusCode != http.StatusOK || msg.Message == "" {
		t.Fatalf("expected 200 with message, got %d %+v", resp.StatusCode, msg)
	}

	var body model.ErrorBody
	resp = ts.do(t, "GET", "/api/auth/validate", ts.userToken, nil, &body)
	if resp.StatusCode != http.StatusUnauthorized || body.Code != model.CodeUnauthorized {
		t.Errorf("expected revoked token to get 401, got %d %q", resp.StatusCode, body.Code)
	}

	// Other sessions are unaffected.
	resp = ts.do(t, "GET", "/api/auth/validate", ts.adminToken, nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected admin token to stay valid, got %d", resp.StatusCode)
	}
}

func TestChangePassword(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.do(t, "PUT", "/api/auth/password", ts.userToken, changePasswordRequest{
		CurrentPassword: "wrong", NewPassword: "newpassword",
	}, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 for wrong current password, got %d", resp.StatusCode)
	}

	resp = ts.do(t, "PUT", "/api/auth/password", ts.userToken, changePasswordRequest{
		CurrentPassword: "password2", NewPassword: "newpassword",
	}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	resp = ts.do(t, "POST", "/api/auth/login", "", model.Credentials{Email: "user@example.com", Password: "newpassword"}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected login with new password, got %d", resp.StatusCode)
	}
}

func TestUnauthenticatedAccess(t *testing.T) {
	ts := setupTestServer(t)

	var body model.ErrorBody
	resp := ts.do(t, "GET", "/api/stock", "", nil, &body)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for unauthenticated request, got %d", resp.StatusCode)
	}
	if body.Code != model.CodeUnauthorized {
		t.Errorf("expected code unauthorized, got %q", body.Code)
	}

	resp = ts.do(t, "GET", "/api/stock", "garbage", nil, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad token, got %d", resp.StatusCode)
	}

	var health model.Health
	resp = ts.do(t, "GET", "/api/dashboard/health", "", nil, &health)
	if resp.StatusCode != http.StatusOK || health.Status != "UP" {
		t.Errorf("expected public health check, got %d %+v", resp.StatusCode, health)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	ts := setupTestServer(t)

	old, _ := auth.GenerateToken(testJWTSecret, 1, "admin@example.com", model.RoleAdmin, testNow.Add(-2*auth.TokenExpiry))
	resp := ts.do(t, "GET", "/api/stock", old, nil, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for expired token, got %d", resp.StatusCode)
	}
}

func TestRoleBasedAccess(t *testing.T) {
	ts := setupTestServer(t)
	s := ts.addStock(t, "O+", 5, 30)

	var body model.ErrorBody
	resp := ts.do(t, "POST", "/api/stock/discard-expired", ts.userToken, nil, &body)
	if resp.StatusCode != http.StatusForbidden || body.Code != model.CodeForbidden {
		t.Errorf("expected 403 forbidden, got %d %q", resp.StatusCode, body.Code)
	}

	resp = ts.do(t, "PUT", "/api/stock/"+itoa(s.ID)+"/quantity?quantity=1", ts.userToken, nil, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 for user editing stock, got %d", resp.StatusCode)
	}

	resp = ts.do(t, "GET", "/api/stock", ts.userToken, nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected users to read stock, got %d", resp.StatusCode)
	}
}

func TestStockFlow(t *testing.T) {
	ts := setupTestServer(t)

	var created model.StockItem
	resp := ts.do(t, "POST", "/api/stock", ts.adminToken, map[string]any{
		"bloodGroup": "A+", "quantity": 8, "expiryDate": "2026-10-22",
	}, &created)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	expired := ts.addStock(t, "B-", 3, -2)
	ts.addStock(t, "O+", 10, 30)

	var body model.ErrorBody
	resp = ts.do(t, "POST", "/api/stock", ts.adminToken, map[string]any{
		"bloodGroup": "A+", "quantity": 1, "expiryDate": "someday",
	}, &body)
	if resp.StatusCode != http.StatusBadRequest || body.Code != model.CodeValidation {
		t.Errorf("expected 400 for malformed date, got %d %q", resp.StatusCode, body.Code)
	}

	var expiring []model.StockItem
	ts.do(t, "GET", "/api/stock/expiring", ts.adminToken, nil, &expiring)
	if len(expiring) != 1 || expiring[0].ID != created.ID {
		t.Errorf("unexpected expiring stock %+v", expiring)
	}
	ts.do(t, "GET", "/api/stock/expiring?days=60", ts.adminToken, nil, &expiring)
	if len(expiring) != 2 {
		t.Errorf("expected 2 items within 60 days, got %d", len(expiring))
	}

	var expiredList []model.StockItem
	ts.do(t, "GET", "/api/stock/expired", ts.adminToken, nil, &expiredList)
	if len(expiredList) != 1 || expiredList[0].ID != expired.ID {
		t.Errorf("unexpected expired stock %+v", expiredList)
	}

	var updated model.StockItem
	resp = ts.do(t, "PUT", "/api/stock/"+itoa(created.ID)+"/quantity?quantity=2", ts.adminToken, nil, &updated)
	if resp.StatusCode != http.StatusOK || updated.Quantity != 2 {
		t.Errorf("expected quantity 2, got %d %+v", resp.StatusCode, updated)
	}
	resp = ts.do(t, "PUT", "/api/stock/"+itoa(created.ID)+"/quantity?quantity=-1", ts.adminToken, nil, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for negative quantity, got %d", resp.StatusCode)
	}

	var result model.DiscardResult
	ts.do(t, "POST", "/api/stock/discard-expired", ts.adminToken, nil, &result)
	if result.Records != 1 || result.Units != 3 || result.Message == "" {
		t.Errorf("unexpected discard result %+v", result)
	}

	resp = ts.do(t, "POST", "/api/stock/"+itoa(created.ID)+"/discard", ts.adminToken, nil, &result)
	if resp.StatusCode != http.StatusOK || result.Units != 2 {
		t.Errorf("unexpected discard by id %d %+v", resp.StatusCode, result)
	}
	resp = ts.do(t, "POST", "/api/stock/"+itoa(created.ID)+"/discard", ts.adminToken, nil, &body)
	if resp.StatusCode != http.StatusNotFound || body.Code != model.CodeNotFound {
		t.Errorf("expected 404 on second discard, got %d %q", resp.StatusCode, body.Code)
	}

	var stats model.DashboardStats
	ts.do(t, "GET", "/api/dashboard/stats", ts.userToken, nil, &stats)
	if stats.AvailableUnits != 10 || stats.ExpiringUnits != 0 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestRequestApprovalFlow(t *testing.T) {
	ts := setupTestServer(t)
	soon := ts.addStock(t, "O-", 2, 1)
	later := ts.addStock(t, "O-", 5, 20)

	newRequest := model.NewBloodRequest{
		PatientName: "Janez Kranjski", Age: 54, BloodGroup: "O-", UnitsRequired: 4, HospitalName: "UKC Ljubljana",
	}

	var req model.BloodRequest
	resp := ts.do(t, "POST", "/api/requests", ts.userToken, newRequest, &req)
	if resp.StatusCode != http.StatusCreated || req.Status != model.RequestPending {
		t.Fatalf("expected pending request, got %d %+v", resp.StatusCode, req)
	}

	resp = ts.do(t, "PUT", "/api/requests/"+itoa(req.ID)+"/status?status=APPROVED", ts.userToken, nil, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 for user approving, got %d", resp.StatusCode)
	}

	var approved model.BloodRequest
	resp = ts.do(t, "PUT", "/api/requests/"+itoa(req.ID)+"/status?status=APPROVED", ts.adminToken, nil, &approved)
	if resp.StatusCode != http.StatusOK || approved.Status != model.RequestApproved {
		t.Fatalf("expected approval, got %d %+v", resp.StatusCode, approved)
	}

	got, _ := store.GetStock(context.Background(), ts.db, soon.ID)
	if got.Quantity != 0 {
		t.Errorf("expected earliest lot drained, got %d", got.Quantity)
	}
	got, _ = store.GetStock(context.Background(), ts.db, later.ID)
	if got.Quantity != 3 {
		t.Errorf("expected 3 left in later lot, got %d", got.Quantity)
	}

	var body model.ErrorBody
	resp = ts.do(t, "PUT", "/api/requests/"+itoa(req.ID)+"/status?status=REJECTED", ts.adminToken, nil, &body)
	if resp.StatusCode != http.StatusConflict || body.Code != model.CodeInvalidTransition {
		t.Errorf("expected invalid transition, got %d %q", resp.StatusCode, body.Code)
	}

	// Only 3 left, ask for 4.
	ts.do(t, "POST", "/api/requests", ts.userToken, newRequest, &req)
	resp = ts.do(t, "PUT", "/api/requests/"+itoa(req.ID)+"/status?status=APPROVED", ts.adminToken, nil, &body)
	if resp.StatusCode != http.StatusConflict || body.Code != model.CodeInsufficientStock {
		t.Errorf("expected insufficient_stock, got %d %q", resp.StatusCode, body.Code)
	}

	newRequest.BloodGroup = "AB+"
	ts.do(t, "POST", "/api/requests", ts.userToken, newRequest, &req)
	resp = ts.do(t, "PUT", "/api/requests/"+itoa(req.ID)+"/status?status=APPROVED", ts.adminToken, nil, &body)
	if resp.StatusCode != http.StatusConflict || body.Code != model.CodeBloodGroupMissing {
		t.Errorf("expected blood_group_not_found, got %d %q", resp.StatusCode, body.Code)
	}

	resp = ts.do(t, "PUT", "/api/requests/"+itoa(req.ID)+"/status?status=DONE", ts.adminToken, nil, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown status, got %d", resp.StatusCode)
	}

	var list []model.BloodRequest
	ts.do(t, "GET", "/api/requests", ts.userToken, nil, &list)
	if len(list) != 3 {
		t.Errorf("expected 3 requests, got %d", len(list))
	}
}

func TestDonorsFlow(t *testing.T) {
	ts := setupTestServer(t)

	var d model.Donor
	resp := ts.do(t, "POST", "/api/donors", ts.userToken, map[string]any{
		"name": "Ana Novak", "age": 31, "gender": "F", "bloodGroup": "A+",
		"contact": "040111222", "lastDonation": "2026-07-01",
	}, &d)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if d.LastDonation == nil || d.LastDonation.String() != "2026-07-01" {
		t.Errorf("unexpected last donation %v", d.LastDonation)
	}

	resp = ts.do(t, "POST", "/api/donors", ts.userToken, map[string]any{
		"name": "Bad Group", "age": 30, "gender": "M", "bloodGroup": "C+", "contact": "1",
	}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown blood group, got %d", resp.StatusCode)
	}

	resp = ts.do(t, "DELETE", "/api/donors/"+itoa(d.ID), ts.userToken, nil, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 for user deleting donor, got %d", resp.StatusCode)
	}

	var stats model.DashboardStats
	ts.do(t, "GET", "/api/dashboard/stats", ts.userToken, nil, &stats)
	if stats.TotalDonors != 1 {
		t.Errorf("expected 1 donor, got %d", stats.TotalDonors)
	}

	resp = ts.do(t, "DELETE", "/api/donors/"+itoa(d.ID), ts.adminToken, nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	resp = ts.do(t, "GET", "/api/donors/"+itoa(d.ID), ts.adminToken, nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestHotspotsReportsAndAnalytics(t *testing.T) {
	ts := setupTestServer(t)

	var h model.Hotspot
	resp := ts.do(t, "POST", "/api/hotspots", ts.adminToken, model.Hotspot{
		Location: "Minto Bridge", Ward: "Ward 8", Zone: "Central", Severity: model.SeverityHigh, WaterLevel: 70,
	}, &h)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	ts.do(t, "POST", "/api/hotspots", ts.adminToken, model.Hotspot{
		Location: "Pul Prahladpur", Ward: "Ward 45", Severity: model.SeverityLow, WaterLevel: 10,
	}, nil)

	resp = ts.do(t, "POST", "/api/hotspots", ts.userToken, model.Hotspot{Location: "x", Severity: model.SeverityLow}, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 for user creating hotspot, got %d", resp.StatusCode)
	}

	var r model.Report
	resp = ts.do(t, "POST", "/api/reports", ts.userToken, model.NewReport{
		Location: "Minto Bridge", Description: "Underpass flooded", Severity: model.SeverityHigh,
	}, &r)
	if resp.StatusCode != http.StatusCreated || r.ReporterEmail != "user@example.com" {
		t.Fatalf("unexpected report %d %+v", resp.StatusCode, r)
	}
	ts.do(t, "POST", "/api/reports", ts.userToken, model.NewReport{Location: "ITO", Severity: model.SeverityLow}, nil)

	resp = ts.do(t, "PUT", "/api/reports/"+itoa(r.ID)+"/status?status=RESOLVED", ts.adminToken, nil, &r)
	if resp.StatusCode != http.StatusOK || r.Status != model.ReportResolved {
		t.Errorf("unexpected status update %d %+v", resp.StatusCode, r)
	}

	var byStatus []model.Report
	ts.do(t, "GET", "/api/reports/status/RESOLVED", ts.userToken, nil, &byStatus)
	if len(byStatus) != 1 {
		t.Errorf("expected 1 resolved report, got %d", len(byStatus))
	}

	resp = ts.do(t, "POST", "/api/analytics/rainfall", ts.adminToken, map[string]any{
		"date": "2026-10-19", "millimetres": 45.0,
	}, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 recording rainfall, got %d", resp.StatusCode)
	}

	var a model.Analytics
	ts.do(t, "GET", "/api/analytics", ts.userToken, nil, &a)
	if a.TotalHotspots != 2 || a.HighRiskZones != 1 || a.TotalReports != 2 || a.ResolutionRate != 0.5 || a.Rainfall24h != 45 {
		t.Errorf("unexpected analytics %+v", a)
	}

	var rain []model.RainfallPoint
	ts.do(t, "GET", "/api/analytics/rainfall", ts.userToken, nil, &rain)
	if len(rain) != RainfallDays || rain[RainfallDays-1].Millimetres != 45 {
		t.Errorf("unexpected rainfall %+v", rain)
	}

	var predictions []model.Prediction
	ts.do(t, "GET", "/api/analytics/predictions", ts.userToken, nil, &predictions)
	if len(predictions) != 2 || predictions[0].PredictedSeverity != model.SeverityCritical {
		t.Errorf("unexpected predictions %+v", predictions)
	}

	var dist []model.DistributionEntry
	ts.do(t, "GET", "/api/analytics/distribution", ts.userToken, nil, &dist)
	if len(dist) != len(model.Severities) {
		t.Errorf("unexpected distribution %+v", dist)
	}
}

func TestReportImageUpload(t *testing.T) {
	ts := setupTestServer(t)

	var r model.Report
	ts.do(t, "POST", "/api/reports", ts.userToken, model.NewReport{Location: "ITO", Severity: model.SeverityMedium}, &r)

	var buf bytes.Buffer
	png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 20, 10)))

	req, _ := http.NewRequest("PUT", ts.URL+"/api/report-images/"+itoa(r.ID), &buf)
	req.Header.Set("Authorization", "Bearer "+ts.userToken)
	req.Header.Set("Content-Type", "image/png")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	req, _ = http.NewRequest("GET", ts.URL+"/api/report-images/"+itoa(r.ID), nil)
	req.Header.Set("Authorization", "Bearer "+ts.userToken)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Type") != "image/jpeg" {
		t.Errorf("expected stored JPEG, got %d %q", resp.StatusCode, resp.Header.Get("Content-Type"))
	}

	req, _ = http.NewRequest("PUT", ts.URL+"/api/report-images/"+itoa(r.ID), bytes.NewReader([]byte("GIF89a......")))
	req.Header.Set("Authorization", "Bearer "+ts.userToken)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for GIF, got %d", resp.StatusCode)
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
