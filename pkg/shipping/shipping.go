// Package shipping prices delivery with interchangeable strategies.
package shipping

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNegativeAmount is returned when asked to price a negative order amount.
var ErrNegativeAmount = errors.New("shipping: amount must not be negative")

// Strategy computes the shipping cost for an order amount.
type Strategy interface {
	Calculate(amount decimal.Decimal) decimal.Decimal
}

// DefaultDistanceRate is the multiplier applied by NewDistanceShipping.
var DefaultDistanceRate = decimal.RequireFromString("1.2")

// DistanceShipping charges amount * Rate.
type DistanceShipping struct {
	Rate decimal.Decimal
}

func NewDistanceShipping() DistanceShipping {
	return DistanceShipping{Rate: DefaultDistanceRate}
}

func (s DistanceShipping) Calculate(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(s.Rate)
}

// FreeShipping never charges.
type FreeShipping struct{}

func (FreeShipping) Calculate(decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}

// Context prices orders with the strategy it was built with.
type Context struct {
	strategy Strategy
}

func NewContext(strategy Strategy) *Context {
	return &Context{strategy: strategy}
}

// ShippingCost delegates to the strategy.
func (c *Context) ShippingCost(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return c.strategy.Calculate(amount), nil
}
