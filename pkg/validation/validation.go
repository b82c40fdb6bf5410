// Package validation checks an order through a chain of validators.
package validation

import (
	"context"

	"foodie/pkg/logger"
)

// Record is what the chain inspects. Handlers receive it by value.
type Record struct {
	InStock bool
	Paid    bool
}

// Handler is a link in the chain. A handler either rejects the record or
// delegates to its successor; a handler with no successor approves.
type Handler interface {
	SetNext(next Handler) Handler
	Handle(ctx context.Context, r Record) bool
}

// Validator rejects records failing check, logging reason.
type Validator struct {
	name   string
	reason string
	check  func(Record) bool
	next   Handler
	log    *logger.Logger
}

func NewValidator(name, reason string, check func(Record) bool, log *logger.Logger) *Validator {
	return &Validator{name: name, reason: reason, check: check, log: log}
}

func NewStockValidator(log *logger.Logger) *Validator {
	return NewValidator("stock", "out of stock", func(r Record) bool { return r.InStock }, log)
}

func NewPaymentValidator(log *logger.Logger) *Validator {
	return NewValidator("payment", "not paid", func(r Record) bool { return r.Paid }, log)
}

// SetNext links next after v and returns next, so calls can be chained:
// stock.SetNext(payment).SetNext(address).
func (v *Validator) SetNext(next Handler) Handler {
	v.next = next
	return next
}

func (v *Validator) Handle(ctx context.Context, r Record) bool {
	if !v.check(r) {
		v.log.Warn(ctx, "order rejected", "validator", v.name, "reason", v.reason)
		return false
	}
	if v.next == nil {
		return true
	}
	return v.next.Handle(ctx, r)
}

// Link chains handlers in argument order and returns the head. With no
// handlers it returns nil.
func Link(handlers ...Handler) Handler {
	if len(handlers) == 0 {
		return nil
	}
	for i := 0; i < len(handlers)-1; i++ {
		handlers[i].SetNext(handlers[i+1])
	}
	return handlers[0]
}
