package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/bloodbank/internal/clock"
	"github.com/erazemk/bloodbank/internal/model"
)

// NewRouter creates the API router with all endpoints registered.
//
// Report photos live under /api/report-images because a GET pattern of
// /api/reports/{id}/image would overlap /api/reports/status/{status}.
func NewRouter(db *sql.DB, jwtSecret string, clk clock.Clock) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret, Clock: clk}
	dashboardHandler := &DashboardHandler{DB: db, Clock: clk}
	donorsHandler := &DonorsHandler{DB: db}
	requestsHandler := &RequestsHandler{DB: db, Clock: clk}
	stockHandler := &StockHandler{DB: db, Clock: clk}
	hotspotsHandler := &HotspotsHandler{DB: db}
	reportsHandler := &ReportsHandler{DB: db}
	analyticsHandler := &AnalyticsHandler{DB: db, Clock: clk}

	authMW := AuthMiddleware(db, jwtSecret, clk)
	requireAdmin := RequireRole(model.RoleAdmin)

	user := func(h http.HandlerFunc) http.Handler { return authMW(h) }
	admin := func(h http.HandlerFunc) http.Handler { return authMW(requireAdmin(h)) }

	// Public.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/signup", authHandler.Signup)
	mux.HandleFunc("GET /api/dashboard/health", dashboardHandler.Health)

	// Session.
	mux.Handle("GET /api/auth/validate", user(authHandler.Validate))
	mux.Handle("GET /api/auth/me", user(authHandler.Me))
	mux.Handle("POST /api/auth/logout", user(authHandler.Logout))
	mux.Handle("PUT /api/auth/password", user(authHandler.ChangePassword))

	mux.Handle("GET /api/dashboard/stats", user(dashboardHandler.Stats))

	// Donors: anyone signed in may register, admins edit.
	mux.Handle("GET /api/donors", user(donorsHandler.List))
	mux.Handle("POST /api/donors", user(donorsHandler.Create))
	mux.Handle("GET /api/donors/{id}", user(donorsHandler.Get))
	mux.Handle("PUT /api/donors/{id}", admin(donorsHandler.Update))
	mux.Handle("DELETE /api/donors/{id}", admin(donorsHandler.Delete))

	// Requests.
	mux.Handle("GET /api/requests", user(requestsHandler.List))
	mux.Handle("POST /api/requests", user(requestsHandler.Create))
	mux.Handle("PUT /api/requests/{id}/status", admin(requestsHandler.UpdateStatus))

	// Stock: read (all), write (admin).
	mux.Handle("GET /api/stock", user(stockHandler.List))
	mux.Handle("POST /api/stock", admin(stockHandler.Create))
	mux.Handle("GET /api/stock/expiring", user(stockHandler.Expiring))
	mux.Handle("GET /api/stock/expired", user(stockHandler.Expired))
	mux.Handle("POST /api/stock/discard-expired", admin(stockHandler.DiscardExpired))
	mux.Handle("PUT /api/stock/{id}/quantity", admin(stockHandler.UpdateQuantity))
	mux.Handle("POST /api/stock/{id}/discard", admin(stockHandler.Discard))

	// Hotspots.
	mux.Handle("GET /api/hotspots", user(hotspotsHandler.List))
	mux.Handle("POST /api/hotspots", admin(hotspotsHandler.Create))
	mux.Handle("PUT /api/hotspots/{id}", admin(hotspotsHandler.Update))
	mux.Handle("DELETE /api/hotspots/{id}", admin(hotspotsHandler.Delete))

	// Reports.
	mux.Handle("GET /api/reports", user(reportsHandler.List))
	mux.Handle("POST /api/reports", user(reportsHandler.Create))
	mux.Handle("GET /api/reports/status/{status}", user(reportsHandler.ByStatus))
	mux.Handle("PUT /api/reports/{id}/status", admin(reportsHandler.UpdateStatus))
	mux.Handle("PUT /api/report-images/{id}", user(reportsHandler.UploadImage))
	mux.Handle("GET /api/report-images/{id}", user(reportsHandler.GetImage))

	// Analytics.
	mux.Handle("GET /api/analytics", user(analyticsHandler.Summary))
	mux.Handle("GET /api/analytics/rainfall", user(analyticsHandler.Rainfall))
	mux.Handle("POST /api/analytics/rainfall", admin(analyticsHandler.RecordRainfall))
	mux.Handle("GET /api/analytics/distribution", user(analyticsHandler.Distribution))
	mux.Handle("GET /api/analytics/predictions", user(analyticsHandler.Predictions))

	return mux
}
