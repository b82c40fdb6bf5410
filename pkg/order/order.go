package order

import (
	"context"
	"errors"
	"slices"

	"github.com/google/uuid"
)

// Order represents a customer order: what was asked for and where it goes.
type Order struct {
	ID      string   `json:"id"`
	Items   []string `json:"items"`
	Address string   `json:"address"`
}

// New creates an order with a fresh id.
func New(address string, items ...string) *Order {
	return &Order{
		ID:      uuid.NewString(),
		Items:   slices.Clone(items),
		Address: address,
	}
}

// Clone returns a copy that owns its own Items, so appending to or editing
// the clone's items leaves o untouched.
func (o *Order) Clone() *Order {
	items := make([]string, len(o.Items))
	copy(items, o.Items)
	return &Order{
		ID:      o.ID,
		Items:   items,
		Address: o.Address,
	}
}

// Repository stores orders grouped by the user who placed them.
type Repository interface {
	Create(ctx context.Context, userID string, o Order) error
	Get(ctx context.Context, id string) (Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
}

// ErrNotFound indicates the requested order does not exist.
var ErrNotFound = errors.New("order not found")
