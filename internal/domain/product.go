package domain

// Size is a pizza size label. It indexes into a product's price triple.
type Size string

const (
	SizePersonal Size = "Personal"
	SizeShared   Size = "Compartida"
	SizeFamily   Size = "Familiar"
)

// SizeIndex maps a size label to its position in Product.Prices.
var SizeIndex = map[Size]int{
	SizePersonal: 0,
	SizeShared:   1,
	SizeFamily:   2,
}

// Valid reports whether s is one of the known size labels.
func (s Size) Valid() bool {
	_, ok := SizeIndex[s]
	return ok
}

type Category string

const (
	CategoryClassic     Category = "Clásicas"
	CategorySpecial     Category = "Especiales"
	CategoryCombo       Category = "Combos"
	CategoryComboPlus   Category = "Combos Plus"
	CategorySharedCombo Category = "Combos Compartidas"
	CategorySide        Category = "Acompañamientos"
	CategoryCustom      Category = "Personalizada"
)

// Product is read-only catalog data. The order core never mutates it.
type Product struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Category       Category   `json:"category"`
	Prices         [3]float64 `json:"prices"` // indexed by SizeIndex, unused sizes are 0
	Ingredients    []string   `json:"ingredients"`
	IsCombo        bool       `json:"isCombo,omitempty"`
	IsSide         bool       `json:"isSide,omitempty"`
	IsCustomizable bool       `json:"isCustomizable,omitempty"`
}

// FixedPrice reports whether the product carries a single base price
// (combos and sides ignore the size selection entirely).
func (p Product) FixedPrice() bool {
	return p.IsCombo || p.IsSide
}

// IsPizza reports whether the product is a sized pizza, and therefore
// eligible to be one half of the customizable half/half pizza.
func (p Product) IsPizza() bool {
	return p.Category == CategoryClassic || p.Category == CategorySpecial
}

// PaymentMethods is the fixed set of accepted payment methods.
var PaymentMethods = []string{"Efectivo", "Yape/Plin", "PENDIENTE"}
