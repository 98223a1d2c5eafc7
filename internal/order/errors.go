package order

import "errors"

var (
	ErrEmptyCart       = errors.New("cart is empty, nothing to register")
	ErrNoPaymentMethod = errors.New("no payment method selected")
)
