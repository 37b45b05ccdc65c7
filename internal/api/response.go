package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/bloodbank/internal/model"
	"github.com/erazemk/bloodbank/internal/store"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("encoding response", "error", err)
		}
	}
}

// jsonError writes a JSON error response with a stable code.
func jsonError(w http.ResponseWriter, status int, code, message string) {
	jsonResponse(w, status, model.ErrorBody{Error: message, Code: code})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// decodeValid decodes the body and validates it, writing a 400 on failure.
func decodeValid(w http.ResponseWriter, r *http.Request, target model.Validator) bool {
	if err := decodeJSON(r, target); err != nil {
		jsonError(w, http.StatusBadRequest, model.CodeValidation, "invalid request body")
		return false
	}
	if err := target.Validate(); err != nil {
		jsonError(w, http.StatusBadRequest, model.CodeValidation, err.Error())
		return false
	}
	return true
}

// pathID parses the {id} path value, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		jsonError(w, http.StatusBadRequest, model.CodeValidation, "invalid id")
		return 0, false
	}
	return id, true
}

// storeError maps a store error to a response. Unknown errors are logged
// and reported as internal.
func storeError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		jsonError(w, http.StatusNotFound, model.CodeNotFound, "not found")
	case errors.Is(err, store.ErrEmailTaken):
		jsonError(w, http.StatusConflict, model.CodeEmailTaken, "email already registered")
	case errors.Is(err, store.ErrInsufficientStock):
		jsonError(w, http.StatusConflict, model.CodeInsufficientStock, "Insufficient blood stock")
	case errors.Is(err, store.ErrBloodGroupNotFound):
		jsonError(w, http.StatusConflict, model.CodeBloodGroupMissing, "Blood group not found in stock")
	case errors.Is(err, store.ErrInvalidTransition):
		jsonError(w, http.StatusConflict, model.CodeInvalidTransition, err.Error())
	default:
		slog.Error("failed to "+action, "error", err)
		jsonError(w, http.StatusInternalServerError, model.CodeInternal, "failed to "+action)
	}
}
