// Package payment adapts third-party payment services to the Payment
// interface used at checkout.
package payment

import (
	"context"

	"github.com/shopspring/decimal"

	"foodie/pkg/logger"
)

// Payment charges an order amount.
type Payment interface {
	Pay(ctx context.Context, amount decimal.Decimal) error
}

// StripeService stands in for an external SDK with its own call shape.
type StripeService struct {
	Log *logger.Logger
}

func (s *StripeService) MakePayment(ctx context.Context, value decimal.Decimal) error {
	s.Log.Info(ctx, "paying with stripe", "amount", "$"+value.StringFixed(2))
	return nil
}

// StripeAdapter exposes a StripeService as a Payment.
type StripeAdapter struct {
	stripe *StripeService
}

func NewStripeAdapter(stripe *StripeService) *StripeAdapter {
	return &StripeAdapter{stripe: stripe}
}

func (a *StripeAdapter) Pay(ctx context.Context, amount decimal.Decimal) error {
	return a.stripe.MakePayment(ctx, amount)
}

var _ Payment = (*StripeAdapter)(nil)
