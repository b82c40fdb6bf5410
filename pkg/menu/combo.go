package menu

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Item is a menu entry: either a single dish or a combo of entries.
type Item interface {
	Name() string
	Price() decimal.Decimal
}

type SimpleFood struct {
	name  string
	price decimal.Decimal
}

func NewSimpleFood(name string, price decimal.Decimal) SimpleFood {
	return SimpleFood{name: name, price: price}
}

func (f SimpleFood) Name() string           { return f.name }
func (f SimpleFood) Price() decimal.Decimal { return f.price }

// Combo sums the prices and lists the names of its items. Combos may
// contain other combos.
type Combo struct {
	items []Item
}

func (c *Combo) Add(items ...Item) {
	c.items = append(c.items, items...)
}

func (c *Combo) Name() string {
	names := make([]string, 0, len(c.items))
	for _, it := range c.items {
		names = append(names, it.Name())
	}
	return "Combo " + strings.Join(names, ", ")
}

func (c *Combo) Price() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Price())
	}
	return total
}
