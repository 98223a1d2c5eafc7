package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/converse98/pizzeria-pos/internal/catalog"
	"github.com/converse98/pizzeria-pos/internal/domain"
)

func product(t *testing.T, id string) domain.Product {
	t.Helper()
	for _, p := range catalog.DefaultProducts() {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("product %s not in catalog", id)
	return domain.Product{}
}

func extra(t *testing.T, id string, count int) domain.ExtraSelection {
	t.Helper()
	for _, e := range catalog.DefaultExtras() {
		if e.ID == id {
			return domain.ExtraSelection{Extra: e, Count: count}
		}
	}
	t.Fatalf("extra %s not in catalog", id)
	return domain.ExtraSelection{}
}

func TestQuote_ComboIgnoresSize(t *testing.T) {
	combo := product(t, "c1")

	price := Quote(combo, domain.Customization{Size: domain.SizeFamily}, nil, nil)

	assert.InDelta(t, 27.00, price, 0.001)
}

func TestQuote_SideFixedPrice(t *testing.T) {
	side := product(t, "a2")

	price := Quote(side, domain.Customization{}, nil, nil)

	assert.InDelta(t, 6.00, price, 0.001)
}

func TestQuote_SizedPizza(t *testing.T) {
	tests := []struct {
		productID string
		size      domain.Size
		want      float64
	}{
		{"p1", domain.SizePersonal, 7.00},
		{"p1", domain.SizeShared, 14.00},
		{"p1", domain.SizeFamily, 20.00},
		{"s5", domain.SizeFamily, 32.00},
		{"s3", domain.SizePersonal, 13.00},
	}

	for _, tt := range tests {
		p := product(t, tt.productID)
		price := Quote(p, domain.Customization{Size: tt.size}, nil, nil)
		assert.InDelta(t, tt.want, price, 0.001, "%s at %s", tt.productID, tt.size)
	}
}

func TestQuote_NoSizeFallsBackToFirstPrice(t *testing.T) {
	p := product(t, "p1")

	price := Quote(p, domain.Customization{}, nil, nil)

	assert.InDelta(t, 7.00, price, 0.001)
}

func TestQuote_HalfHalfTakesMoreExpensiveHalf(t *testing.T) {
	custom := product(t, catalog.CustomPizzaID)
	cheap := product(t, "p1")      // 20.00 familiar
	expensive := product(t, "s5") // 32.00 familiar

	cust := domain.Customization{Size: domain.SizeFamily, HalfHalf: true}

	price := Quote(custom, cust, &cheap, &expensive)
	assert.InDelta(t, 32.00, price, 0.001)

	// Order of halves must not matter.
	swapped := Quote(custom, cust, &expensive, &cheap)
	assert.InDelta(t, price, swapped, 0.001)
}

func TestQuote_HalfHalfDefaultsToFamilySize(t *testing.T) {
	custom := product(t, catalog.CustomPizzaID)
	half1 := product(t, "p1")
	half2 := product(t, "p2")

	price := Quote(custom, domain.Customization{HalfHalf: true}, &half1, &half2)

	assert.InDelta(t, 21.00, price, 0.001) // Napolitana familiar
}

func TestQuote_HalfHalfUnselectedHalfPricesAtZero(t *testing.T) {
	custom := product(t, catalog.CustomPizzaID)
	half1 := product(t, "p1")

	cust := domain.Customization{Size: domain.SizeShared, HalfHalf: true}

	price := Quote(custom, cust, &half1, nil)
	assert.InDelta(t, 14.00, price, 0.001)

	price = Quote(custom, cust, nil, nil)
	assert.InDelta(t, 0.00, price, 0.001)
}

func TestQuote_ExtrasAddPriceTimesCount(t *testing.T) {
	p := product(t, "p4")
	base := Quote(p, domain.Customization{Size: domain.SizeFamily}, nil, nil)

	for n := 1; n <= 4; n++ {
		cust := domain.Customization{
			Size:   domain.SizeFamily,
			Extras: []domain.ExtraSelection{extra(t, "e5", n)}, // 4.00 each
		}
		price := Quote(p, cust, nil, nil)
		assert.InDelta(t, base+4.00*float64(n), price, 0.001, "count %d", n)
	}
}

func TestQuote_MultipleExtras(t *testing.T) {
	p := product(t, "p1")
	cust := domain.Customization{
		Size: domain.SizeFamily,
		Extras: []domain.ExtraSelection{
			extra(t, "e1", 2), // 6.00 x2
			extra(t, "e7", 1), // 1.00
		},
	}

	price := Quote(p, cust, nil, nil)

	assert.InDelta(t, 33.00, price, 0.001)
}

func TestQuote_Deterministic(t *testing.T) {
	custom := product(t, catalog.CustomPizzaID)
	half1 := product(t, "p7")
	half2 := product(t, "s2")
	cust := domain.Customization{
		Size:     domain.SizeShared,
		HalfHalf: true,
		Extras:   []domain.ExtraSelection{extra(t, "e6", 3)},
	}

	first := Quote(custom, cust, &half1, &half2)
	second := Quote(custom, cust, &half1, &half2)

	require.Equal(t, first, second)
}

func TestQuote_MozarellaFamiliarWithDoubleCheese(t *testing.T) {
	p := product(t, "p1")
	require.Equal(t, "La Mozarella", p.Name)

	cust := domain.Customization{
		Size:   domain.SizeFamily,
		Extras: []domain.ExtraSelection{extra(t, "e1", 2)},
	}

	price := Quote(p, cust, nil, nil)

	assert.InDelta(t, 32.00, price, 0.001)
}
