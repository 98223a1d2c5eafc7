package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/converse98/pizzeria-pos/internal/cart"
	"github.com/converse98/pizzeria-pos/internal/catalog"
	"github.com/converse98/pizzeria-pos/internal/domain"
	"github.com/converse98/pizzeria-pos/internal/order"
	"github.com/converse98/pizzeria-pos/internal/submit"
)

type mockSubmitter struct {
	m       sync.Mutex
	receipt submit.Receipt
	err     error
	calls   int
	orders  []*domain.Order
	entered chan struct{} // closed once Submit is running, optional
	release chan struct{} // Submit blocks until closed, optional
}

func (s *mockSubmitter) Submit(_ context.Context, o *domain.Order) (submit.Receipt, error) {
	s.m.Lock()
	s.calls++
	s.orders = append(s.orders, o)
	s.m.Unlock()

	if s.entered != nil {
		close(s.entered)
		s.entered = nil
	}
	if s.release != nil {
		<-s.release
	}

	if s.err != nil {
		return nil, s.err
	}
	return s.receipt, nil
}

func (s *mockSubmitter) callCount() int {
	s.m.Lock()
	defer s.m.Unlock()
	return s.calls
}

type mockPublisher struct {
	err   error
	calls int
}

func (p *mockPublisher) OrderRegistered(context.Context, *domain.Order) error {
	p.calls++
	return p.err
}

func newTestOrdering(submitter Submitter, publisher Publisher) *Ordering {
	return NewOrdering(catalog.NewDefaultMemory(), cart.NewStore(), submitter, publisher, "local-user")
}

func TestAddToCart_PricesLineFromCatalog(t *testing.T) {
	svc := newTestOrdering(&mockSubmitter{}, nil)

	item, err := svc.AddToCart(context.Background(), AddRequest{
		ProductID: "p1",
		Size:      domain.SizeFamily,
		Extras:    []ExtraCount{{ID: "e1", Count: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, "La Mozarella", item.Name)
	assert.Equal(t, domain.CategoryClassic, item.Category)
	assert.InDelta(t, 32.00, item.FinalPrice, 0.001)
	assert.Equal(t, 1, item.Quantity)

	require.Len(t, item.Customization.Extras, 1)
	assert.Equal(t, "Porción de Queso Extra", item.Customization.Extras[0].Name)
	assert.Equal(t, 2, item.Customization.Extras[0].Count)

	count, total := svc.Totals()
	assert.Equal(t, 1, count)
	assert.InDelta(t, 32.00, total, 0.001)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	svc := newTestOrdering(&mockSubmitter{}, nil)

	_, err := svc.AddToCart(context.Background(), AddRequest{ProductID: "nope"})

	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestAddToCart_UnknownExtra(t *testing.T) {
	svc := newTestOrdering(&mockSubmitter{}, nil)

	_, err := svc.AddToCart(context.Background(), AddRequest{
		ProductID: "p1",
		Size:      domain.SizeFamily,
		Extras:    []ExtraCount{{ID: "nope", Count: 1}},
	})

	assert.ErrorIs(t, err, catalog.ErrExtraNotFound)
}

func TestAddToCart_RejectsSizelessPizza(t *testing.T) {
	svc := newTestOrdering(&mockSubmitter{}, nil)

	_, err := svc.AddToCart(context.Background(), AddRequest{ProductID: "p1"})

	assert.ErrorIs(t, err, ErrInvalidCustomization)
}

func TestAddToCart_RejectsZeroCountExtra(t *testing.T) {
	svc := newTestOrdering(&mockSubmitter{}, nil)

	_, err := svc.AddToCart(context.Background(), AddRequest{
		ProductID: "p1",
		Size:      domain.SizeFamily,
		Extras:    []ExtraCount{{ID: "e1", Count: 0}},
	})

	assert.ErrorIs(t, err, ErrInvalidCustomization)
}

func TestAddToCart_HalfHalf(t *testing.T) {
	svc := newTestOrdering(&mockSubmitter{}, nil)

	item, err := svc.AddToCart(context.Background(), AddRequest{
		ProductID: catalog.CustomPizzaID,
		Size:      domain.SizeFamily,
		Half1ID:   "p1",
		Half2ID:   "s5",
	})
	require.NoError(t, err)

	assert.True(t, item.Customization.HalfHalf)
	require.NotNil(t, item.Customization.Half1)
	require.NotNil(t, item.Customization.Half2)
	assert.Equal(t, "La Mozarella", item.Customization.Half1.Name)
	assert.Equal(t, "Marocchinos", item.Customization.Half2.Name)
	assert.InDelta(t, 32.00, item.FinalPrice, 0.001, "more expensive half wins")
}

func TestAddToCart_RejectsEqualHalves(t *testing.T) {
	svc := newTestOrdering(&mockSubmitter{}, nil)

	_, err := svc.AddToCart(context.Background(), AddRequest{
		ProductID: catalog.CustomPizzaID,
		Size:      domain.SizeFamily,
		Half1ID:   "p1",
		Half2ID:   "p1",
	})

	assert.ErrorIs(t, err, ErrInvalidCustomization)
}

func TestAddToCart_RejectsComboAsHalf(t *testing.T) {
	svc := newTestOrdering(&mockSubmitter{}, nil)

	_, err := svc.AddToCart(context.Background(), AddRequest{
		ProductID: catalog.CustomPizzaID,
		Size:      domain.SizeFamily,
		Half1ID:   "p1",
		Half2ID:   "c1",
	})

	assert.ErrorIs(t, err, ErrInvalidCustomization)
}

func TestAddToCart_ComboDropsSizeSelection(t *testing.T) {
	svc := newTestOrdering(&mockSubmitter{}, nil)

	item, err := svc.AddToCart(context.Background(), AddRequest{
		ProductID: "c1",
		Size:      domain.SizeFamily,
	})
	require.NoError(t, err)

	assert.InDelta(t, 27.00, item.FinalPrice, 0.001)
	assert.Empty(t, item.Customization.Size)
}

func TestRegisterOrder_Success(t *testing.T) {
	submitter := &mockSubmitter{receipt: submit.Receipt{"id": "ord-1"}}
	publisher := &mockPublisher{}
	svc := newTestOrdering(submitter, publisher)

	_, err := svc.AddToCart(context.Background(), AddRequest{ProductID: "p1", Size: domain.SizeFamily})
	require.NoError(t, err)

	result, err := svc.RegisterOrder(context.Background(), "Efectivo")
	require.NoError(t, err)

	assert.Equal(t, 1, submitter.callCount())
	assert.Equal(t, "Efectivo", result.Order.PaymentMethod)
	assert.Equal(t, "local-user", result.Order.UserID)
	assert.InDelta(t, 20.00, result.Order.TotalPrice, 0.001)
	assert.Equal(t, "ord-1", result.Receipt["id"])
	assert.Equal(t, 1, publisher.calls)

	count, total := svc.Totals()
	assert.Zero(t, count, "cart cleared after confirmed success")
	assert.Zero(t, total)
}

func TestRegisterOrder_EmptyCartMakesNoNetworkCall(t *testing.T) {
	submitter := &mockSubmitter{}
	svc := newTestOrdering(submitter, nil)

	_, err := svc.RegisterOrder(context.Background(), "Efectivo")

	assert.ErrorIs(t, err, order.ErrEmptyCart)
	assert.Zero(t, submitter.callCount())
}

func TestRegisterOrder_MissingPaymentMethod(t *testing.T) {
	submitter := &mockSubmitter{}
	svc := newTestOrdering(submitter, nil)

	_, err := svc.AddToCart(context.Background(), AddRequest{ProductID: "a1"})
	require.NoError(t, err)

	_, err = svc.RegisterOrder(context.Background(), "")

	assert.ErrorIs(t, err, order.ErrNoPaymentMethod)
	assert.Zero(t, submitter.callCount())

	count, _ := svc.Totals()
	assert.Equal(t, 1, count, "cart unchanged")
}

func TestRegisterOrder_FailurePreservesCart(t *testing.T) {
	submitter := &mockSubmitter{err: &submit.StatusError{Status: 500, Body: "boom"}}
	publisher := &mockPublisher{}
	svc := newTestOrdering(submitter, publisher)

	_, err := svc.AddToCart(context.Background(), AddRequest{ProductID: "p1", Size: domain.SizeFamily})
	require.NoError(t, err)

	_, err = svc.RegisterOrder(context.Background(), "Efectivo")
	require.Error(t, err)

	count, total := svc.Totals()
	assert.Equal(t, 1, count, "no error kind may drop cart data")
	assert.InDelta(t, 20.00, total, 0.001)
	assert.Zero(t, publisher.calls)

	// The gate is released, so a manual retry works.
	submitter.err = nil
	_, err = svc.RegisterOrder(context.Background(), "Efectivo")
	assert.NoError(t, err)
}

func TestRegisterOrder_PublishFailureStillSucceeds(t *testing.T) {
	submitter := &mockSubmitter{}
	publisher := &mockPublisher{err: errors.New("broker down")}
	svc := newTestOrdering(submitter, publisher)

	_, err := svc.AddToCart(context.Background(), AddRequest{ProductID: "a1"})
	require.NoError(t, err)

	_, err = svc.RegisterOrder(context.Background(), "Efectivo")

	require.NoError(t, err)
	assert.Equal(t, 1, publisher.calls)
	count, _ := svc.Totals()
	assert.Zero(t, count)
}

func TestRegisterOrder_GatesMutationsWhileInFlight(t *testing.T) {
	submitter := &mockSubmitter{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	entered := submitter.entered
	svc := newTestOrdering(submitter, nil)

	item, err := svc.AddToCart(context.Background(), AddRequest{ProductID: "p1", Size: domain.SizeFamily})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := svc.RegisterOrder(context.Background(), "Efectivo")
		done <- err
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("submission never started")
	}

	// Shape mutations are rejected while the submission is outstanding.
	assert.ErrorIs(t, svc.UpdateQuantity(item.ID, 1), cart.ErrRegistering)
	assert.ErrorIs(t, svc.RemoveItem(item.ID), cart.ErrRegistering)

	// Reads remain available.
	count, total := svc.Totals()
	assert.Equal(t, 1, count)
	assert.InDelta(t, 20.00, total, 0.001)

	// A second registration is rejected at entry.
	_, err = svc.RegisterOrder(context.Background(), "Efectivo")
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(submitter.release)
	require.NoError(t, <-done)

	assert.Equal(t, 1, submitter.callCount())
	count, _ = svc.Totals()
	assert.Zero(t, count)
}
