package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/logger"
	"trustrent-backend/internal/security"
	"trustrent-backend/internal/storage"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNoActiveSession):
		return http.StatusConflict
	case errors.Is(err, domain.ErrAmountMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, storage.ErrInvalidKey):
		return http.StatusBadRequest
	case errors.Is(err, security.ErrInvalidToken), errors.Is(err, security.ErrExpiredToken), errors.Is(err, security.ErrWrongTokenType):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Join(domain.ErrInvalidArgument, err)
	}
	return nil
}
