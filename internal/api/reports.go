package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/erazemk/bloodbank/internal/imaging"
	"github.com/erazemk/bloodbank/internal/model"
	"github.com/erazemk/bloodbank/internal/store"
)

// ReportsHandler handles citizen water-logging reports.
type ReportsHandler struct {
	DB *sql.DB
}

func (h *ReportsHandler) respondList(w http.ResponseWriter, r *http.Request, status model.ReportStatus) {
	reports, err := store.ListReports(r.Context(), h.DB, status)
	if err != nil {
		storeError(w, err, "list reports")
		return
	}
	if reports == nil {
		reports = []model.Report{}
	}
	jsonResponse(w, http.StatusOK, reports)
}

// List handles GET /api/reports.
func (h *ReportsHandler) List(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, "")
}

// ByStatus handles GET /api/reports/status/{status}.
func (h *ReportsHandler) ByStatus(w http.ResponseWriter, r *http.Request) {
	status, err := model.ParseReportStatus(r.PathValue("status"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, model.CodeValidation, err.Error())
		return
	}
	h.respondList(w, r, status)
}

// Create handles POST /api/reports.
func (h *ReportsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.NewReport
	if !decodeValid(w, r, &req) {
		return
	}

	var reporter string
	if claims := GetClaims(r.Context()); claims != nil {
		reporter = claims.Email
	}

	report, err := store.CreateReport(r.Context(), h.DB, req, reporter)
	if err != nil {
		storeError(w, err, "create report")
		return
	}

	slog.Info("report submitted", "id", report.ID, "location", report.Location, "severity", report.Severity)
	jsonResponse(w, http.StatusCreated, report)
}

// UpdateStatus handles PUT /api/reports/{id}/status?status=.
func (h *ReportsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	status, err := model.ParseReportStatus(r.URL.Query().Get("status"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, model.CodeValidation, err.Error())
		return
	}

	if err := store.UpdateReportStatus(r.Context(), h.DB, id, status); err != nil {
		storeError(w, err, "update report status")
		return
	}

	report, err := store.GetReport(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "get report")
		return
	}
	slog.Info("report status changed", "id", id, "status", status)
	jsonResponse(w, http.StatusOK, report)
}

// UploadImage handles PUT /api/report-images/{id}. The body is the raw photo.
func (h *ReportsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxPhotoBytes)
	defer r.Body.Close()

	photo, err := imaging.NormalizePhoto(r.Body)
	var tooBig *http.MaxBytesError
	switch {
	case errors.As(err, &tooBig), errors.Is(err, imaging.ErrTooLarge):
		jsonError(w, http.StatusRequestEntityTooLarge, model.CodeValidation, "photo too large")
		return
	case err != nil:
		jsonError(w, http.StatusBadRequest, model.CodeValidation, err.Error())
		return
	}

	if err := store.SetReportImage(r.Context(), h.DB, id, photo.Data, photo.MIME); err != nil {
		storeError(w, err, "save photo")
		return
	}

	slog.Info("report photo uploaded", "id", id, "width", photo.Width, "height", photo.Height, "bytes", len(photo.Data))
	jsonResponse(w, http.StatusOK, model.Message{Message: "photo uploaded"})
}

// GetImage handles GET /api/report-images/{id}.
func (h *ReportsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	data, mime, err := store.GetReportImage(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "get photo")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, model.CodeNotFound, "no photo")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
