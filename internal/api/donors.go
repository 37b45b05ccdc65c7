package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/erazemk/bloodbank/internal/model"
	"github.com/erazemk/bloodbank/internal/store"
)

// DonorsHandler handles donor registration and management.
type DonorsHandler struct {
	DB *sql.DB
}

// List handles GET /api/donors.
func (h *DonorsHandler) List(w http.ResponseWriter, r *http.Request) {
	donors, err := store.ListDonors(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "list donors")
		return
	}
	if donors == nil {
		donors = []model.Donor{}
	}
	jsonResponse(w, http.StatusOK, donors)
}

// Get handles GET /api/donors/{id}.
func (h *DonorsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	donor, err := store.GetDonor(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "get donor")
		return
	}
	if donor == nil {
		jsonError(w, http.StatusNotFound, model.CodeNotFound, "donor not found")
		return
	}
	jsonResponse(w, http.StatusOK, donor)
}

// Create handles POST /api/donors.
func (h *DonorsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.NewDonor
	if !decodeValid(w, r, &req) {
		return
	}

	donor, err := store.CreateDonor(r.Context(), h.DB, req)
	if err != nil {
		storeError(w, err, "register donor")
		return
	}

	slog.Info("donor registered", "id", donor.ID, "blood_group", donor.BloodGroup)
	jsonResponse(w, http.StatusCreated, donor)
}

// Update handles PUT /api/donors/{id}.
func (h *DonorsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.NewDonor
	if !decodeValid(w, r, &req) {
		return
	}

	if err := store.UpdateDonor(r.Context(), h.DB, id, req); err != nil {
		storeError(w, err, "update donor")
		return
	}

	donor, err := store.GetDonor(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "get donor")
		return
	}
	jsonResponse(w, http.StatusOK, donor)
}

// Delete handles DELETE /api/donors/{id}.
func (h *DonorsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := store.DeleteDonor(r.Context(), h.DB, id); err != nil {
		storeError(w, err, "delete donor")
		return
	}
	slog.Info("donor deleted", "id", id)
	jsonResponse(w, http.StatusOK, model.Message{Message: "donor deleted"})
}
