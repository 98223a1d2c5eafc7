package http

import (
	"context"
	"net/http"

	"github.com/converse98/pizzeria-pos/internal/domain"
)

// ProductLister is the slice of the ordering service the product
// handler consumes.
type ProductLister interface {
	ListProducts(ctx context.Context, category, search string) ([]domain.Product, error)
}

type ProductHandler struct {
	svc ProductLister
}

func NewProductHandler(svc ProductLister) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("search")

	products, err := h.svc.ListProducts(r.Context(), category, search)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list products")
		return
	}

	respondJSON(w, http.StatusOK, products)
}
