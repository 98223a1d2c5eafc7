package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/converse98/pizzeria-pos/internal/service"
)

// OrderRegistrar is the slice of the ordering service the order
// handler consumes.
type OrderRegistrar interface {
	RegisterOrder(ctx context.Context, paymentMethod string) (*service.RegisterResult, error)
}

type OrderHandler struct {
	svc OrderRegistrar
}

func NewOrderHandler(svc OrderRegistrar) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type RegisterOrderRequestDTO struct {
	PaymentMethod string `json:"payment_method"`
}

type RegisterOrderResponseDTO struct {
	Order   interface{} `json:"order"`
	Receipt interface{} `json:"receipt,omitempty"`
}

func (h *OrderHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	result, err := h.svc.RegisterOrder(r.Context(), req.PaymentMethod)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, RegisterOrderResponseDTO{
		Order:   result.Order,
		Receipt: result.Receipt,
	})
}
