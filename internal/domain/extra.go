package domain

// Extra is an add-on ingredient with a fixed unit price.
type Extra struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	IsVegetable bool    `json:"isVegetable,omitempty"`
}

// ExtraSelection is an extra attached to a cart line. Count is always
// at least 1; a selection decremented to zero is removed, never kept.
type ExtraSelection struct {
	Extra
	Count int `json:"count"`
}
