package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/erazemk/bloodbank/internal/model"
	"github.com/erazemk/bloodbank/internal/store"
)

// HotspotsHandler handles water-logging hotspots.
type HotspotsHandler struct {
	DB *sql.DB
}

// List handles GET /api/hotspots.
func (h *HotspotsHandler) List(w http.ResponseWriter, r *http.Request) {
	hotspots, err := store.ListHotspots(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "list hotspots")
		return
	}
	if hotspots == nil {
		hotspots = []model.Hotspot{}
	}
	jsonResponse(w, http.StatusOK, hotspots)
}

// Create handles POST /api/hotspots.
func (h *HotspotsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.Hotspot
	if !decodeValid(w, r, &req) {
		return
	}

	created, err := store.CreateHotspot(r.Context(), h.DB, req)
	if err != nil {
		storeError(w, err, "create hotspot")
		return
	}

	slog.Info("hotspot created", "id", created.ID, "location", created.Location, "severity", created.Severity)
	jsonResponse(w, http.StatusCreated, created)
}

// Update handles PUT /api/hotspots/{id}.
func (h *HotspotsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.Hotspot
	if !decodeValid(w, r, &req) {
		return
	}

	if err := store.UpdateHotspot(r.Context(), h.DB, id, req); err != nil {
		storeError(w, err, "update hotspot")
		return
	}

	updated, err := store.GetHotspot(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "get hotspot")
		return
	}
	slog.Info("hotspot updated", "id", id, "severity", updated.Severity, "water_level", updated.WaterLevel)
	jsonResponse(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/hotspots/{id}.
func (h *HotspotsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := store.DeleteHotspot(r.Context(), h.DB, id); err != nil {
		storeError(w, err, "delete hotspot")
		return
	}
	slog.Info("hotspot deleted", "id", id)
	jsonResponse(w, http.StatusOK, model.Message{Message: "hotspot deleted"})
}
