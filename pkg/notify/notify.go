// Package notify fans order events out to subscribers.
package notify

import (
	"context"
	"errors"
	"fmt"

	"foodie/pkg/logger"
)

// Observer is notified every time a subject publishes an order event.
type Observer interface {
	Update(ctx context.Context, orderID string) error
}

// ObserverFunc lets a plain function act as an Observer.
type ObserverFunc func(ctx context.Context, orderID string) error

func (f ObserverFunc) Update(ctx context.Context, orderID string) error {
	return f(ctx, orderID)
}

// Subject holds subscribers in the order they were added.
type Subject struct {
	observers []Observer
}

// AddObserver appends o. Adding the same observer twice notifies it twice.
func (s *Subject) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// Len reports how many subscribers are registered.
func (s *Subject) Len() int {
	return len(s.observers)
}

// Notify calls every subscriber in insertion order. A failing subscriber
// does not stop the others; all failures are returned joined.
func (s *Subject) Notify(ctx context.Context, orderID string) error {
	var errs []error
	for i, o := range s.observers {
		if err := o.Update(ctx, orderID); err != nil {
			errs = append(errs, fmt.Errorf("observer %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Kitchen starts preparing every order it hears about.
type Kitchen struct {
	Log *logger.Logger
}

func (k Kitchen) Update(ctx context.Context, orderID string) error {
	k.Log.Info(ctx, "kitchen: preparing order", "order_id", orderID)
	return nil
}

// Delivery waits for every order it hears about.
type Delivery struct {
	Log *logger.Logger
}

func (d Delivery) Update(ctx context.Context, orderID string) error {
	d.Log.Info(ctx, "delivery: waiting for order", "order_id", orderID)
	return nil
}
