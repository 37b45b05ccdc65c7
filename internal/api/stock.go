package api

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/bloodbank/internal/clock"
	"github.com/erazemk/bloodbank/internal/derived"
	"github.com/erazemk/bloodbank/internal/model"
	"github.com/erazemk/bloodbank/internal/store"
)

// StockHandler handles blood stock endpoints.
type StockHandler struct {
	DB    *sql.DB
	Clock clock.Clock
}

func (h *StockHandler) list(w http.ResponseWriter, r *http.Request) ([]model.StockItem, bool) {
	stock, err := store.ListStock(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "list stock")
		return nil, false
	}
	return stock, true
}

// List handles GET /api/stock.
func (h *StockHandler) List(w http.ResponseWriter, r *http.Request) {
	stock, ok := h.list(w, r)
	if !ok {
		return
	}
	if stock == nil {
		stock = []model.StockItem{}
	}
	jsonResponse(w, http.StatusOK, stock)
}

// Create handles POST /api/stock.
func (h *StockHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.NewStock
	if !decodeValid(w, r, &req) {
		return
	}

	item, err := store.CreateStock(r.Context(), h.DB, req)
	if err != nil {
		storeError(w, err, "add stock")
		return
	}

	slog.Info("stock added", "id", item.ID, "blood_group", item.BloodGroup, "quantity", item.Quantity, "expiry", item.ExpiryDate)
	jsonResponse(w, http.StatusCreated, item)
}

// UpdateQuantity handles PUT /api/stock/{id}/quantity?quantity=.
func (h *StockHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	quantity, err := strconv.Atoi(r.URL.Query().Get("quantity"))
	if err != nil || quantity < 0 {
		jsonError(w, http.StatusBadRequest, model.CodeValidation, "quantity must be a non-negative integer")
		return
	}

	if err := store.UpdateStockQuantity(r.Context(), h.DB, id, quantity); err != nil {
		storeError(w, err, "update stock")
		return
	}

	item, err := store.GetStock(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "get stock")
		return
	}
	slog.Info("stock quantity set", "id", id, "quantity", quantity)
	jsonResponse(w, http.StatusOK, item)
}

// Expiring handles GET /api/stock/expiring?days=. Days defaults to the
// expiring window.
func (h *StockHandler) Expiring(w http.ResponseWriter, r *http.Request) {
	days := model.ExpiringWindowDays
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			jsonError(w, http.StatusBadRequest, model.CodeValidation, "days must be a non-negative integer")
			return
		}
		days = n
	}

	stock, ok := h.list(w, r)
	if !ok {
		return
	}
	jsonResponse(w, http.StatusOK, derived.ExpiringWithin(stock, days, h.Clock.Now()))
}

// Expired handles GET /api/stock/expired.
func (h *StockHandler) Expired(w http.ResponseWriter, r *http.Request) {
	stock, ok := h.list(w, r)
	if !ok {
		return
	}
	jsonResponse(w, http.StatusOK, derived.Expired(stock, h.Clock.Now()))
}

// DiscardExpired handles POST /api/stock/discard-expired.
func (h *StockHandler) DiscardExpired(w http.ResponseWriter, r *http.Request) {
	records, units, err := store.DiscardExpired(r.Context(), h.DB, model.DateOf(h.Clock.Now()))
	if err != nil {
		storeError(w, err, "discard expired stock")
		return
	}

	slog.Info("expired stock discarded", "records", records, "units", units)
	jsonResponse(w, http.StatusOK, model.DiscardResult{
		Message: fmt.Sprintf("Discarded %d expired units from %d records", units, records),
		Records: records,
		Units:   units,
	})
}

// Discard handles POST /api/stock/{id}/discard.
func (h *StockHandler) Discard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	item, err := store.DiscardStock(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "discard stock")
		return
	}

	slog.Info("stock discarded", "id", id, "blood_group", item.BloodGroup, "quantity", item.Quantity)
	jsonResponse(w, http.StatusOK, model.DiscardResult{
		Message: fmt.Sprintf("Discarded %d units of %s", item.Quantity, item.BloodGroup),
		Records: 1,
		Units:   item.Quantity,
	})
}
