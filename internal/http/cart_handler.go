package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/converse98/pizzeria-pos/internal/domain"
	"github.com/converse98/pizzeria-pos/internal/service"
)

// CartService is the slice of the ordering service the cart handler
// consumes.
type CartService interface {
	AddToCart(ctx context.Context, req service.AddRequest) (domain.CartItem, error)
	UpdateQuantity(id string, delta int) error
	RemoveItem(id string) error
	Items() []domain.CartItem
	Totals() (int, float64)
}

type CartHandler struct {
	svc CartService
}

func NewCartHandler(svc CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

type ExtraDTO struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

type AddItemRequestDTO struct {
	ProductID  string     `json:"product_id"`
	Size       string     `json:"size,omitempty"`
	Comment    string     `json:"comment,omitempty"`
	Extras     []ExtraDTO `json:"extras,omitempty"`
	PizzaHalf1 string     `json:"pizza_half_1,omitempty"`
	PizzaHalf2 string     `json:"pizza_half_2,omitempty"`
}

type UpdateQuantityRequestDTO struct {
	Delta int `json:"delta"`
}

type CartResponseDTO struct {
	Items      []domain.CartItem `json:"items"`
	ItemCount  int               `json:"item_count"`
	TotalPrice float64           `json:"total_price"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	items := h.svc.Items()
	count, total := h.svc.Totals()

	respondJSON(w, http.StatusOK, CartResponseDTO{
		Items:      items,
		ItemCount:  count,
		TotalPrice: total,
	})
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	extras := make([]service.ExtraCount, 0, len(req.Extras))
	for _, e := range req.Extras {
		extras = append(extras, service.ExtraCount{ID: e.ID, Count: e.Count})
	}

	item, err := h.svc.AddToCart(r.Context(), service.AddRequest{
		ProductID: req.ProductID,
		Size:      domain.Size(req.Size),
		Comment:   req.Comment,
		Extras:    extras,
		Half1ID:   req.PizzaHalf1,
		Half2ID:   req.PizzaHalf2,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item id is required")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.Delta == 0 {
		respondError(w, http.StatusBadRequest, "invalid_delta", "delta must be non-zero")
		return
	}

	if err := h.svc.UpdateQuantity(itemID, req.Delta); err != nil {
		handleServiceError(w, err)
		return
	}

	h.GetCart(w, r)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item id is required")
		return
	}

	if err := h.svc.RemoveItem(itemID); err != nil {
		handleServiceError(w, err)
		return
	}

	h.GetCart(w, r)
}
