// Package order builds the immutable snapshot submitted to the order
// log endpoint.
package order

import (
	"time"

	"github.com/converse98/pizzeria-pos/internal/domain"
)

// Assemble converts the current cart lines into an Order snapshot. It
// never mutates the cart; retries of the submission resend the exact
// snapshot returned here.
func Assemble(items []domain.CartItem, paymentMethod, userID string) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if paymentMethod == "" {
		return nil, ErrNoPaymentMethod
	}

	orderItems := make([]domain.OrderItem, 0, len(items))
	var total float64
	for _, item := range items {
		total += item.FinalPrice * float64(item.Quantity)
		orderItems = append(orderItems, domain.OrderItem{
			Name:          item.Name,
			Quantity:      item.Quantity,
			FinalPrice:    item.FinalPrice,
			Customization: item.Customization,
		})
	}

	return &domain.Order{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		UserID:        userID,
		PaymentMethod: paymentMethod,
		TotalPrice:    total,
		Items:         orderItems,
	}, nil
}
