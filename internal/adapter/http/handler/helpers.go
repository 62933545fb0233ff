package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MuchMorePower/Inventory-Management-System/internal/adapter/http/dto"
	"github.com/MuchMorePower/Inventory-Management-System/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrMovementNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNothingToExport):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyUndone):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotUndone):
		return http.StatusConflict
	case errors.Is(err, domain.ErrMissingProduct),
		errors.Is(err, domain.ErrMissingModel),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrUnknownDirection),
		errors.Is(err, domain.ErrMissingColumn):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIDParam parses the {id} URL parameter.
func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// parseIDList parses a comma-separated id list, e.g. "1,4,7".
func parseIDList(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	var ids []int64
	start := 0
	for i := 0; i <= len(raw); i++ {
		if i < len(raw) && raw[i] != ',' {
			continue
		}
		id, err := strconv.ParseInt(raw[start:i], 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
		start = i + 1
	}

	return ids, nil
}
