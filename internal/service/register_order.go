package service

import (
	"context"
	"log"

	"github.com/converse98/pizzeria-pos/internal/domain"
	"github.com/converse98/pizzeria-pos/internal/order"
	"github.com/converse98/pizzeria-pos/internal/submit"
)

// RegisterResult carries the submitted snapshot and the order log's
// parsed response.
type RegisterResult struct {
	Order   *domain.Order
	Receipt submit.Receipt
}

// RegisterOrder assembles the cart into an order snapshot and delivers
// it. While the submission is in flight the cart rejects shape
// mutations; reads stay available. The cart is cleared only on a
// confirmed success — every failure leaves it untouched so the caller
// can retry.
func (o *Ordering) RegisterOrder(ctx context.Context, paymentMethod string) (*RegisterResult, error) {
	if !o.cart.BeginRegister() {
		return nil, ErrSubmissionInFlight
	}
	defer o.cart.EndRegister()

	snapshot, err := order.Assemble(o.cart.Items(), paymentMethod, o.userID)
	if err != nil {
		return nil, err // validation failure, no network call made
	}

	receipt, err := o.submitter.Submit(ctx, snapshot)
	if err != nil {
		log.Printf("order submission failed: %v", err)
		return nil, err
	}

	o.cart.Clear()
	log.Printf("order registered for %s, total S/%.2f", snapshot.UserID, snapshot.TotalPrice)

	if o.publisher != nil {
		if errPub := o.publisher.OrderRegistered(ctx, snapshot); errPub != nil {
			// Best-effort: the order already reached the order log.
			log.Printf("order event publish failed: %v", errPub)
		}
	}

	return &RegisterResult{Order: snapshot, Receipt: receipt}, nil
}
