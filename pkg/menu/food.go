// Package menu prices dishes: toppings stack on a base dish and combos
// group dishes together.
package menu

import "github.com/shopspring/decimal"

// Food is anything that can be described and priced.
type Food interface {
	Description() string
	Cost() decimal.Decimal
}

// BasicFood is the undecorated dish.
type BasicFood struct{}

func (BasicFood) Description() string   { return "Food" }
func (BasicFood) Cost() decimal.Decimal { return decimal.NewFromInt(100) }

// topping adds its price and name on top of whatever it wraps.
type topping struct {
	base  Food
	name  string
	price decimal.Decimal
}

func (t topping) Description() string {
	return t.base.Description() + " with extra " + t.name
}

func (t topping) Cost() decimal.Decimal {
	return t.base.Cost().Add(t.price)
}

// WithTopping wraps f with an arbitrary extra.
func WithTopping(f Food, name string, price decimal.Decimal) Food {
	return topping{base: f, name: name, price: price}
}

func WithCheese(f Food) Food {
	return WithTopping(f, "cheese", decimal.NewFromInt(20))
}

func WithBacon(f Food) Food {
	return WithTopping(f, "bacon", decimal.NewFromInt(30))
}
