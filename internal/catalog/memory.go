package catalog

import (
	"context"

	"github.com/converse98/pizzeria-pos/internal/domain"
)

// Memory is an in-memory catalog store. It is immutable after
// construction, so reads need no locking.
type Memory struct {
	products   []domain.Product
	extras     []domain.Extra
	productIdx map[string]int
	extraIdx   map[string]int
}

// NewMemory builds a catalog store over the given reference data.
func NewMemory(products []domain.Product, extras []domain.Extra) *Memory {
	m := &Memory{
		products:   products,
		extras:     extras,
		productIdx: make(map[string]int, len(products)),
		extraIdx:   make(map[string]int, len(extras)),
	}
	for i, p := range products {
		m.productIdx[p.ID] = i
	}
	for i, e := range extras {
		m.extraIdx[e.ID] = i
	}
	return m
}

// NewDefaultMemory builds the store over the standard menu.
func NewDefaultMemory() *Memory {
	return NewMemory(DefaultProducts(), DefaultExtras())
}

func (m *Memory) Products(context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *Memory) Product(_ context.Context, id string) (*domain.Product, error) {
	i, ok := m.productIdx[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := m.products[i]
	return &p, nil
}

func (m *Memory) Extras(context.Context) ([]domain.Extra, error) {
	out := make([]domain.Extra, len(m.extras))
	copy(out, m.extras)
	return out, nil
}

func (m *Memory) Extra(_ context.Context, id string) (*domain.Extra, error) {
	i, ok := m.extraIdx[id]
	if !ok {
		return nil, ErrExtraNotFound
	}
	e := m.extras[i]
	return &e, nil
}

func (m *Memory) Filter(_ context.Context, category, search string) ([]domain.Product, error) {
	return filterProducts(m.products, category, search), nil
}
