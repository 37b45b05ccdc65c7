package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/bloodbank/internal/clock"
	"github.com/erazemk/bloodbank/internal/derived"
	"github.com/erazemk/bloodbank/internal/model"
	"github.com/erazemk/bloodbank/internal/store"
)

// RainfallDays is the length of the rainfall series.
const RainfallDays = 7

// AnalyticsHandler serves figures derived from hotspots, reports and rainfall.
type AnalyticsHandler struct {
	DB    *sql.DB
	Clock clock.Clock
}

func (h *AnalyticsHandler) rainfallToday(w http.ResponseWriter, r *http.Request) (float64, bool) {
	today := model.DateOf(h.Clock.Now())
	points, err := store.ListRainfall(r.Context(), h.DB, today, today)
	if err != nil {
		storeError(w, err, "list rainfall")
		return 0, false
	}
	return points[0].Millimetres, true
}

func (h *AnalyticsHandler) hotspots(w http.ResponseWriter, r *http.Request) ([]model.Hotspot, bool) {
	hotspots, err := store.ListHotspots(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "list hotspots")
		return nil, false
	}
	return hotspots, true
}

// Summary handles GET /api/analytics.
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	hotspots, ok := h.hotspots(w, r)
	if !ok {
		return
	}
	reports, err := store.ListReports(r.Context(), h.DB, "")
	if err != nil {
		storeError(w, err, "list reports")
		return
	}
	rain, ok := h.rainfallToday(w, r)
	if !ok {
		return
	}
	jsonResponse(w, http.StatusOK, derived.Summarize(hotspots, reports, rain))
}

// Rainfall handles GET /api/analytics/rainfall.
func (h *AnalyticsHandler) Rainfall(w http.ResponseWriter, r *http.Request) {
	today := model.DateOf(h.Clock.Now())
	points, err := store.ListRainfall(r.Context(), h.DB, today.AddDays(1-RainfallDays), today)
	if err != nil {
		storeError(w, err, "list rainfall")
		return
	}
	jsonResponse(w, http.StatusOK, points)
}

// Distribution handles GET /api/analytics/distribution.
func (h *AnalyticsHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	hotspots, ok := h.hotspots(w, r)
	if !ok {
		return
	}
	jsonResponse(w, http.StatusOK, derived.Distribution(hotspots))
}

// Predictions handles GET /api/analytics/predictions.
func (h *AnalyticsHandler) Predictions(w http.ResponseWriter, r *http.Request) {
	hotspots, ok := h.hotspots(w, r)
	if !ok {
		return
	}
	rain, ok := h.rainfallToday(w, r)
	if !ok {
		return
	}
	jsonResponse(w, http.StatusOK, derived.Predict(hotspots, rain))
}

// RecordRainfall handles POST /api/analytics/rainfall.
func (h *AnalyticsHandler) RecordRainfall(w http.ResponseWriter, r *http.Request) {
	var req model.RainfallPoint
	if !decodeValid(w, r, &req) {
		return
	}
	if err := store.RecordRainfall(r.Context(), h.DB, req.Date, req.Millimetres); err != nil {
		storeError(w, err, "record rainfall")
		return
	}
	jsonResponse(w, http.StatusCreated, model.Message{Message: "rainfall recorded"})
}
