// Package checkout places an order with a single call, hiding the order,
// payment and delivery services behind a facade.
package checkout

import (
	"context"
	"fmt"

	"foodie/pkg/logger"
)

type OrderCreator interface {
	CreateOrder(ctx context.Context) error
}

type PaymentProcessor interface {
	ProcessPayment(ctx context.Context) error
}

type Dispatcher interface {
	DispatchOrder(ctx context.Context) error
}

type OrderService struct{ Log *logger.Logger }

func (s OrderService) CreateOrder(ctx context.Context) error {
	s.Log.Info(ctx, "order created")
	return nil
}

type PaymentService struct{ Log *logger.Logger }

func (s PaymentService) ProcessPayment(ctx context.Context) error {
	s.Log.Info(ctx, "payment processed")
	return nil
}

type DeliveryService struct{ Log *logger.Logger }

func (s DeliveryService) DispatchOrder(ctx context.Context) error {
	s.Log.Info(ctx, "order dispatched")
	return nil
}

// Facade runs the three checkout steps in order. A failed step stops the
// sequence; earlier steps are not undone.
type Facade struct {
	orders   OrderCreator
	payments PaymentProcessor
	delivery Dispatcher
}

func NewFacade(orders OrderCreator, payments PaymentProcessor, delivery Dispatcher) *Facade {
	return &Facade{orders: orders, payments: payments, delivery: delivery}
}

// NewDefaultFacade wires the built-in services to log.
func NewDefaultFacade(log *logger.Logger) *Facade {
	return NewFacade(OrderService{Log: log}, PaymentService{Log: log}, DeliveryService{Log: log})
}

func (f *Facade) PlaceOrder(ctx context.Context) error {
	if err := f.orders.CreateOrder(ctx); err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	if err := f.payments.ProcessPayment(ctx); err != nil {
		return fmt.Errorf("process payment: %w", err)
	}
	if err := f.delivery.DispatchOrder(ctx); err != nil {
		return fmt.Errorf("dispatch order: %w", err)
	}
	return nil
}
