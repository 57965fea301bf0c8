// Package common holds helpers shared by the public and admin HTTP layers.
package common

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/retailatlas/store-locator/api/internal/domain"
)

// WriteJSON serializes payload to JSON with status and logs on failure.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("response encode failed", zap.Error(err))
	}
}

// WriteError maps a service error onto its HTTP status and writes the
// standard error body.
func WriteError(w http.ResponseWriter, err error) {
	WriteJSON(w, StatusForError(err), map[string]string{"error": userMessage(err)})
}

// StatusForError maps the domain error taxonomy onto HTTP status codes.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrInvalidFilter):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrStoresExist):
		return http.StatusPreconditionFailed
	case errors.Is(err, domain.ErrMalformedSourceData):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "store not found"
	case errors.Is(err, domain.ErrInvalidArgument):
		return "invalid argument"
	case errors.Is(err, domain.ErrInvalidFilter):
		return "invalid filter"
	case errors.Is(err, domain.ErrStoresExist):
		return "stores already exist"
	case errors.Is(err, domain.ErrMalformedSourceData):
		return "feed data failed to parse"
	default:
		return "internal error"
	}
}
