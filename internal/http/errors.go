// Package httpapi exposes the mock endpoint over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fairyhunter13/inventory-task-simulator/internal/model"
	"github.com/fairyhunter13/inventory-task-simulator/internal/obs"
)

// Error codes written in the "error" field.
const (
	CodeNotFound             = "not_found"
	CodeUnknownEndpoint      = "unknown_endpoint"
	CodeValidation           = "validation_error"
	CodeUnsupportedMediaType = "unsupported_media_type"
	CodeBodyTooLarge         = "body_too_large"
	CodeInternal             = "internal_error"
)

// jsonError represents a JSON error payload.
type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSONError writes a JSON error payload with the given status code.
func WriteJSONError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonError{Error: message, Details: details})
}

// WriteErr maps an error kind to its status code and payload.
func WriteErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, model.ErrUnknownEndpoint):
		WriteJSONError(w, http.StatusNotFound, CodeUnknownEndpoint, err.Error())
	case errors.Is(err, model.ErrValidation):
		WriteJSONError(w, http.StatusBadRequest, CodeValidation, err.Error())
	default:
		obs.Logger.Error("request_failed", "error", err)
		WriteJSONError(w, http.StatusInternalServerError, CodeInternal, "")
	}
}
