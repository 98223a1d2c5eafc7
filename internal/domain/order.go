package domain

// OrderItem is the submission-relevant view of a cart line.
type OrderItem struct {
	Name          string        `json:"name"`
	Quantity      int           `json:"quantity"`
	FinalPrice    float64       `json:"finalPrice"`
	Customization Customization `json:"customization"`
}

// Order is the immutable snapshot built from the cart at checkout.
// Retries resend the identical snapshot; nothing mutates it after
// assembly.
type Order struct {
	Timestamp     string      `json:"timestamp"`
	UserID        string      `json:"userId"`
	PaymentMethod string      `json:"paymentMethod"`
	TotalPrice    float64     `json:"totalPrice"`
	Items         []OrderItem `json:"items"`
}
