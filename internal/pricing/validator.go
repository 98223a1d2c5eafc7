package pricing

import "github.com/converse98/pizzeria-pos/internal/domain"

// IsAddable reports whether the customization is complete enough to
// become a cart line.
//
// The half/half pizza needs a size and two distinct halves; equal-id
// halves are invalid, not merely discouraged. Ordinary sized pizzas
// need a size. Combos and sides are always addable. Extras and the
// comment never affect addability.
func IsAddable(p domain.Product, c domain.Customization) bool {
	if p.IsCustomizable {
		return c.Size.Valid() &&
			c.Half1 != nil && c.Half2 != nil &&
			c.Half1.ID != c.Half2.ID
	}

	if p.FixedPrice() {
		return true
	}

	if p.IsPizza() {
		return c.Size.Valid()
	}

	return true
}
