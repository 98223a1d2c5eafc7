// Package service wires the catalog, pricing engine, cart store and
// submission client into the caller-facing ordering operations.
package service

import (
	"context"

	"github.com/converse98/pizzeria-pos/internal/cart"
	"github.com/converse98/pizzeria-pos/internal/domain"
	"github.com/converse98/pizzeria-pos/internal/submit"
)

// Catalog is the read-only product data the service consumes.
type Catalog interface {
	Product(ctx context.Context, id string) (*domain.Product, error)
	Extra(ctx context.Context, id string) (*domain.Extra, error)
	Filter(ctx context.Context, category, search string) ([]domain.Product, error)
}

// Submitter delivers an assembled order to the order log endpoint.
type Submitter interface {
	Submit(ctx context.Context, o *domain.Order) (submit.Receipt, error)
}

// Publisher emits an event for each successfully registered order.
type Publisher interface {
	OrderRegistered(ctx context.Context, o *domain.Order) error
}

type Ordering struct {
	catalog   Catalog
	cart      *cart.Store
	submitter Submitter
	publisher Publisher // optional, nil disables events
	userID    string
}

func NewOrdering(catalog Catalog, cartStore *cart.Store, submitter Submitter, publisher Publisher, userID string) *Ordering {
	return &Ordering{
		catalog:   catalog,
		cart:      cartStore,
		submitter: submitter,
		publisher: publisher,
		userID:    userID,
	}
}

// ListProducts delegates catalog browsing; category "" or "Todas"
// lists everything, search matches names and ingredients.
func (o *Ordering) ListProducts(ctx context.Context, category, search string) ([]domain.Product, error) {
	return o.catalog.Filter(ctx, category, search)
}

func (o *Ordering) UpdateQuantity(id string, delta int) error {
	return o.cart.UpdateQuantity(id, delta)
}

func (o *Ordering) RemoveItem(id string) error {
	return o.cart.Remove(id)
}

func (o *Ordering) Items() []domain.CartItem {
	return o.cart.Items()
}

func (o *Ordering) Totals() (int, float64) {
	return o.cart.Totals()
}
