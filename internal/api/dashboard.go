package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/bloodbank/internal/clock"
	"github.com/erazemk/bloodbank/internal/derived"
	"github.com/erazemk/bloodbank/internal/model"
	"github.com/erazemk/bloodbank/internal/store"
)

// DashboardHandler serves the home page counters and the health check.
type DashboardHandler struct {
	DB    *sql.DB
	Clock clock.Clock
}

// Stats handles GET /api/dashboard/stats. Available units are all units that
// have not expired, expiring ones included.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	donors, err := store.CountDonors(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "count donors")
		return
	}
	stock, err := store.ListStock(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "list stock")
		return
	}

	summary := derived.Aggregate(stock, h.Clock.Now())
	jsonResponse(w, http.StatusOK, model.DashboardStats{
		TotalDonors:    donors,
		AvailableUnits: summary.TotalUnits - summary.ExpiredUnits,
		ExpiringUnits:  summary.ExpiringUnits,
	})
}

// Health handles GET /api/dashboard/health.
func (h *DashboardHandler) Health(w http.ResponseWriter, r *http.Request) {
	health := model.Health{Status: "UP", Database: "UP", Time: h.Clock.Now().UTC()}
	status := http.StatusOK
	if err := h.DB.PingContext(r.Context()); err != nil {
		health.Status = "DOWN"
		health.Database = "DOWN"
		status = http.StatusServiceUnavailable
	}
	jsonResponse(w, status, health)
}
