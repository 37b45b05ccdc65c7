package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/erazemk/bloodbank/internal/clock"
	"github.com/erazemk/bloodbank/internal/model"
	"github.com/erazemk/bloodbank/internal/store"
)

// RequestsHandler handles the blood request lifecycle.
type RequestsHandler struct {
	DB    *sql.DB
	Clock clock.Clock
}

// List handles GET /api/requests.
func (h *RequestsHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := store.ListRequests(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "list requests")
		return
	}
	if requests == nil {
		requests = []model.BloodRequest{}
	}
	jsonResponse(w, http.StatusOK, requests)
}

// Create handles POST /api/requests.
func (h *RequestsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.NewBloodRequest
	if !decodeValid(w, r, &req) {
		return
	}

	var requestedBy *int64
	if claims := GetClaims(r.Context()); claims != nil {
		requestedBy = &claims.UserID
	}

	created, err := store.CreateRequest(r.Context(), h.DB, req, requestedBy)
	if err != nil {
		storeError(w, err, "create request")
		return
	}

	slog.Info("blood requested", "id", created.ID, "blood_group", created.BloodGroup, "units", created.UnitsRequired)
	jsonResponse(w, http.StatusCreated, created)
}

// UpdateStatus handles PUT /api/requests/{id}/status?status=.
func (h *RequestsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	status, err := model.ParseRequestStatus(r.URL.Query().Get("status"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, model.CodeValidation, err.Error())
		return
	}

	today := model.DateOf(h.Clock.Now())
	updated, err := store.UpdateRequestStatus(r.Context(), h.DB, id, status, today)
	if err != nil {
		storeError(w, err, "update request status")
		return
	}

	slog.Info("request status changed", "id", id, "status", status, "by", GetClaims(r.Context()).Email)
	jsonResponse(w, http.StatusOK, updated)
}
