package menu

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToppings(t *testing.T) {
	tests := []struct {
		name string
		food Food
		cost string
		desc string
	}{
		{"plain", BasicFood{}, "100", "Food"},
		{"cheese", WithCheese(BasicFood{}), "120", "Food with extra cheese"},
		{"cheese then bacon", WithBacon(WithCheese(BasicFood{})), "150", "Food with extra cheese with extra bacon"},
		{"bacon then cheese", WithCheese(WithBacon(BasicFood{})), "150", "Food with extra bacon with extra cheese"},
		{"double cheese", WithCheese(WithCheese(BasicFood{})), "140", "Food with extra cheese with extra cheese"},
		{"custom", WithTopping(BasicFood{}, "olives", decimal.RequireFromString("7.5")), "107.5", "Food with extra olives"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.desc, tt.food.Description())
			assert.True(t, tt.food.Cost().Equal(decimal.RequireFromString(tt.cost)), "cost %s", tt.food.Cost())
		})
	}
}

func TestCombo(t *testing.T) {
	combo := &Combo{}
	combo.Add(NewSimpleFood("Pizza", decimal.NewFromInt(100)), NewSimpleFood("Empanada", decimal.NewFromInt(50)))

	assert.Equal(t, "Combo Pizza, Empanada", combo.Name())
	assert.True(t, combo.Price().Equal(decimal.NewFromInt(150)))
}

func TestNestedCombo(t *testing.T) {
	inner := &Combo{}
	inner.Add(NewSimpleFood("Soda", decimal.NewFromInt(10)), NewSimpleFood("Fries", decimal.NewFromInt(25)))

	outer := &Combo{}
	outer.Add(NewSimpleFood("Pizza", decimal.NewFromInt(100)), inner)

	assert.Equal(t, "Combo Pizza, Combo Soda, Fries", outer.Name())
	assert.True(t, outer.Price().Equal(decimal.NewFromInt(135)))
}

func TestEmptyCombo(t *testing.T) {
	c := &Combo{}
	assert.Equal(t, "Combo ", c.Name())
	assert.True(t, c.Price().IsZero())
}
