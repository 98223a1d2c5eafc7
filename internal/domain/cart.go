package domain

import "time"

// ProductRef identifies a catalog product chosen as one half of a
// half/half pizza.
type ProductRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Customization captures every choice made for a single cart line. The
// JSON tags match the order log payload shape.
type Customization struct {
	Size     Size             `json:"size"`
	HalfHalf bool             `json:"isHalfHalf"`
	Comment  string           `json:"comment"`
	Extras   []ExtraSelection `json:"extras"`
	Half1    *ProductRef      `json:"pizzaHalf1"`
	Half2    *ProductRef      `json:"pizzaHalf2"`
}

// CartItem is one priced line in the cart. Name, category and price are
// captured at add time so later catalog changes never alter existing
// lines. FinalPrice is immutable once the line exists; only Quantity
// changes afterwards.
type CartItem struct {
	ID            string        `json:"id"`
	ProductID     string        `json:"productId"`
	Name          string        `json:"name"`
	Category      Category      `json:"category"`
	FinalPrice    float64       `json:"finalPrice"`
	Quantity      int           `json:"quantity"`
	Timestamp     time.Time     `json:"timestamp"`
	Customization Customization `json:"customization"`
}
