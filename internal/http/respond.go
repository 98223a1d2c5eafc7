package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/converse98/pizzeria-pos/internal/cart"
	"github.com/converse98/pizzeria-pos/internal/catalog"
	"github.com/converse98/pizzeria-pos/internal/order"
	"github.com/converse98/pizzeria-pos/internal/service"
	"github.com/converse98/pizzeria-pos/internal/submit"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleServiceError maps domain errors onto HTTP statuses. Validation
// failures are recoverable and user-visible; submission failures keep
// the cart intact so the caller can retry.
func handleServiceError(w http.ResponseWriter, err error) {
	var statusErr *submit.StatusError

	switch {
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, catalog.ErrExtraNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, service.ErrInvalidCustomization),
		errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrNoPaymentMethod):
		respondError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
	case errors.Is(err, cart.ErrRegistering),
		errors.Is(err, service.ErrSubmissionInFlight),
		errors.Is(err, submit.ErrInFlight):
		respondError(w, http.StatusConflict, "registration_in_progress", err.Error())
	case errors.Is(err, submit.ErrRetryExhausted):
		respondError(w, http.StatusBadGateway, "retry_exhausted", err.Error())
	case errors.As(err, &statusErr):
		respondError(w, http.StatusBadGateway, "order_log_error", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
