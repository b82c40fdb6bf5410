// Package memory implements an in-memory order repository.
package memory

import (
	"context"
	"slices"
	"sync"

	"foodie/pkg/order"
)

// Repository provides an in-memory implementation of order.Repository.
type Repository struct {
	mu     sync.RWMutex
	orders map[string]order.Order
	owner  map[string]string
	byUser map[string][]string
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{
		orders: make(map[string]order.Order),
		owner:  make(map[string]string),
		byUser: make(map[string][]string),
	}
}

// Create stores the order under userID. Storing the same id again replaces
// the order without listing it twice; if userID differs from the previous
// owner, the order moves to the end of userID's list.
func (r *Repository) Create(ctx context.Context, userID string, o order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.owner[o.ID]
	if ok && prev != userID {
		r.byUser[prev] = slices.DeleteFunc(r.byUser[prev], func(id string) bool { return id == o.ID })
		if len(r.byUser[prev]) == 0 {
			delete(r.byUser, prev)
		}
	}
	if !ok || prev != userID {
		r.byUser[userID] = append(r.byUser[userID], o.ID)
		r.owner[o.ID] = userID
	}
	r.orders[o.ID] = *o.Clone()
	return nil
}

// Get retrieves an order by ID.
func (r *Repository) Get(ctx context.Context, id string) (order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return order.Order{}, order.ErrNotFound
	}
	return *o.Clone(), nil
}

// ListByUser returns the user's orders in the order they were created.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byUser[userID]
	out := make([]order.Order, 0, len(ids))
	for _, id := range ids {
		o := r.orders[id]
		out = append(out, *o.Clone())
	}
	return out, nil
}

var _ order.Repository = (*Repository)(nil)
