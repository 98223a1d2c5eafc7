package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/converse98/pizzeria-pos/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrExtraNotFound   = errors.New("extra not found")
)

// CategoryAll is the pseudo-category that matches every product.
const CategoryAll = "Todas"

// Store is the read-only product/extras catalog. Consumers treat it as
// injected configuration; nothing in the order core writes to it.
type Store interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Product(ctx context.Context, id string) (*domain.Product, error)
	Extras(ctx context.Context) ([]domain.Extra, error)
	Extra(ctx context.Context, id string) (*domain.Extra, error)
	Filter(ctx context.Context, category, search string) ([]domain.Product, error)
}

// filterProducts applies the category and search filters. Search matches
// the product name or any ingredient, case-insensitively.
func filterProducts(products []domain.Product, category, search string) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	search = strings.ToLower(search)
	for _, p := range products {
		if category != "" && category != CategoryAll && string(p.Category) != category {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func matchesSearch(p domain.Product, lowerSearch string) bool {
	if strings.Contains(strings.ToLower(p.Name), lowerSearch) {
		return true
	}
	for _, ing := range p.Ingredients {
		if strings.Contains(strings.ToLower(ing), lowerSearch) {
			return true
		}
	}
	return false
}
