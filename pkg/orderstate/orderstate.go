// Package orderstate walks an order through its lifecycle:
// new, cooking, on delivery, delivered.
package orderstate

import (
	"context"

	"foodie/pkg/logger"
)

// Status labels shown to customers.
const (
	StatusNew       = "nuevo"
	StatusCooking   = "En cocina"
	StatusDelivery  = "En entrega"
	StatusDelivered = "Entregado"
)

// State is one step of the lifecycle. Next moves the tracker to the
// following step.
type State interface {
	Next(ctx context.Context, t *Tracker)
	Status() string
}

type newOrder struct{}

func (newOrder) Next(_ context.Context, t *Tracker) { t.SetState(cooking{}) }
func (newOrder) Status() string                     { return StatusNew }

type cooking struct{}

func (cooking) Next(_ context.Context, t *Tracker) { t.SetState(onDelivery{}) }
func (cooking) Status() string                     { return StatusCooking }

type onDelivery struct{}

func (onDelivery) Next(_ context.Context, t *Tracker) { t.SetState(delivered{}) }
func (onDelivery) Status() string                     { return StatusDelivery }

// delivered is terminal: Next only reports it.
type delivered struct{}

func (delivered) Next(ctx context.Context, t *Tracker) {
	t.log.Warn(ctx, "order already delivered")
}
func (delivered) Status() string { return StatusDelivered }

// Tracker holds the current state of one order.
type Tracker struct {
	state State
	log   *logger.Logger
}

// NewTracker starts a tracker in the new state.
func NewTracker(log *logger.Logger) *Tracker {
	return &Tracker{state: newOrder{}, log: log}
}

func (t *Tracker) SetState(s State) {
	t.state = s
}

// Next advances one step; on a delivered order it is a no-op.
func (t *Tracker) Next(ctx context.Context) {
	t.state.Next(ctx, t)
}

func (t *Tracker) Status() string {
	return t.state.Status()
}

// Delivered reports whether the order reached its final state.
func (t *Tracker) Delivered() bool {
	_, ok := t.state.(delivered)
	return ok
}
