package service

import (
	"context"
	"log"
	"strings"

	"github.com/converse98/pizzeria-pos/internal/domain"
	"github.com/converse98/pizzeria-pos/internal/pricing"
)

// ExtraCount selects one extra by id with its quantity on the line.
type ExtraCount struct {
	ID    string
	Count int
}

// AddRequest is a caller's customization choice for one product.
type AddRequest struct {
	ProductID string
	Size      domain.Size
	Comment   string
	Extras    []ExtraCount
	Half1ID   string
	Half2ID   string
}

// AddToCart resolves the request against the catalog, validates the
// customization, prices it and appends the resulting line to the cart.
func (o *Ordering) AddToCart(ctx context.Context, req AddRequest) (domain.CartItem, error) {
	p, err := o.catalog.Product(ctx, req.ProductID)
	if err != nil {
		return domain.CartItem{}, err
	}

	cust, half1, half2, err := o.buildCustomization(ctx, *p, req)
	if err != nil {
		return domain.CartItem{}, err
	}

	if !pricing.IsAddable(*p, cust) {
		return domain.CartItem{}, ErrInvalidCustomization
	}

	price := pricing.Quote(*p, cust, half1, half2)

	item := o.cart.Add(domain.CartItem{
		ProductID:     p.ID,
		Name:          p.Name,
		Category:      p.Category,
		FinalPrice:    price,
		Customization: cust,
	})

	log.Printf("added %q to cart for S/%.2f (line %s)", item.Name, item.FinalPrice, item.ID)
	return item, nil
}

// buildCustomization turns the raw request into a validated snapshot,
// resolving halves and extras to their catalog entries so the cart
// line carries authoritative names and prices.
func (o *Ordering) buildCustomization(ctx context.Context, p domain.Product, req AddRequest) (domain.Customization, *domain.Product, *domain.Product, error) {
	cust := domain.Customization{
		Comment: strings.TrimSpace(req.Comment),
	}

	if req.Size != "" {
		if !req.Size.Valid() {
			return cust, nil, nil, ErrInvalidCustomization
		}
		cust.Size = req.Size
	}

	// Combos and sides have a single fixed price; size and half/half
	// selections do not apply to them.
	if p.FixedPrice() {
		cust.Size = ""
	}

	var half1, half2 *domain.Product
	if p.IsCustomizable {
		cust.HalfHalf = true
		var err error
		if half1, err = o.resolveHalf(ctx, req.Half1ID); err != nil {
			return cust, nil, nil, err
		}
		if half2, err = o.resolveHalf(ctx, req.Half2ID); err != nil {
			return cust, nil, nil, err
		}
		if half1 != nil {
			cust.Half1 = &domain.ProductRef{ID: half1.ID, Name: half1.Name}
		}
		if half2 != nil {
			cust.Half2 = &domain.ProductRef{ID: half2.ID, Name: half2.Name}
		}
	}

	for _, sel := range req.Extras {
		if sel.Count < 1 {
			// A zero-count extra is not representable; decrementing to
			// zero removes it before it ever reaches the cart.
			return cust, nil, nil, ErrInvalidCustomization
		}
		extra, err := o.catalog.Extra(ctx, sel.ID)
		if err != nil {
			return cust, nil, nil, err
		}
		cust.Extras = append(cust.Extras, domain.ExtraSelection{Extra: *extra, Count: sel.Count})
	}

	return cust, half1, half2, nil
}

// resolveHalf loads one half of a half/half pizza. Only sized pizzas
// (clásicas and especiales) qualify as halves.
func (o *Ordering) resolveHalf(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, nil // validator rejects the missing half
	}
	p, err := o.catalog.Product(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsPizza() {
		return nil, ErrInvalidCustomization
	}
	return p, nil
}
