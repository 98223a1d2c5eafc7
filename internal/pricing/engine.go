// Package pricing turns a product plus its customization into a final
// line price. Everything here is pure: same inputs, same price.
package pricing

import (
	"math"

	"github.com/converse98/pizzeria-pos/internal/domain"
)

// Quote computes the price for one cart line. half1 and half2 are the
// resolved base products of a half/half pizza; they are ignored for
// every other product and may be nil.
//
// Rules, in priority order:
//  1. combos and sides have a single fixed price, size is ignored
//  2. the half/half pizza costs as much as its more expensive half at
//     the chosen size (Familiar when no size is chosen yet)
//  3. a sized pizza costs its price at the chosen size
//  4. anything else falls back to the first price slot
//
// The selected extras are then added at price × count each.
func Quote(p domain.Product, c domain.Customization, half1, half2 *domain.Product) float64 {
	var base float64

	switch {
	case p.FixedPrice():
		base = p.Prices[0]
	case p.IsCustomizable:
		idx := domain.SizeIndex[domain.SizeFamily]
		if i, ok := domain.SizeIndex[c.Size]; ok {
			idx = i
		}
		base = math.Max(halfPrice(half1, idx), halfPrice(half2, idx))
	case c.Size.Valid():
		base = p.Prices[domain.SizeIndex[c.Size]]
	default:
		base = p.Prices[0]
	}

	for _, e := range c.Extras {
		base += e.Price * float64(e.Count)
	}

	return round2(base)
}

// halfPrice prices one half of a half/half pizza, 0 when unselected.
func halfPrice(p *domain.Product, sizeIndex int) float64 {
	if p == nil {
		return 0
	}
	return p.Prices[sizeIndex]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
