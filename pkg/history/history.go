// Package history looks up a user's past orders, with a caching proxy in
// front of the slow lookup.
package history

import (
	"context"
	"fmt"
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"

	"foodie/pkg/logger"
	"foodie/pkg/order"
)

// History returns the ids of the orders a user placed.
type History interface {
	Orders(ctx context.Context, userID string) ([]string, error)
}

// Store is the slow lookup: it queries the order repository every time.
type Store struct {
	repo order.Repository
	log  *logger.Logger
}

func NewStore(repo order.Repository, log *logger.Logger) *Store {
	return &Store{repo: repo, log: log}
}

func (s *Store) Orders(ctx context.Context, userID string) ([]string, error) {
	s.log.Info(ctx, "querying order database", "user_id", userID)
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders for %s: %w", userID, err)
	}
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids, nil
}

type store interface {
	Get(key string) ([]string, bool)
	Add(key string, value []string) bool
	Len() int
}

type mapStore map[string][]string

func (m mapStore) Get(key string) ([]string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapStore) Add(key string, value []string) bool {
	m[key] = value
	return false
}

func (m mapStore) Len() int { return len(m) }

// CachingProxy remembers the first answer for each user and serves it from
// then on. Entries are never invalidated; by default the cache is also
// unbounded.
type CachingProxy struct {
	backend History
	mu      sync.Mutex
	entries store

	maxEntries int
	reg        prometheus.Registerer
	lookups    prometheus.Counter
	hits       prometheus.Counter
}

type Option func(*CachingProxy)

// WithMaxEntries bounds the cache, evicting the least recently used user
// once n users are cached. n <= 0 keeps it unbounded.
func WithMaxEntries(n int) Option {
	return func(p *CachingProxy) { p.maxEntries = n }
}

// WithRegisterer registers the proxy's counters with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(p *CachingProxy) { p.reg = reg }
}

func NewCachingProxy(backend History, opts ...Option) (*CachingProxy, error) {
	p := &CachingProxy{
		backend: backend,
		lookups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "foodie",
			Subsystem: "history",
			Name:      "lookups_total",
			Help:      "Order history lookups that reached the backend store.",
		}),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "foodie",
			Subsystem: "history",
			Name:      "cache_hits_total",
			Help:      "Order history lookups served from the cache.",
		}),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.maxEntries > 0 {
		c, err := lru.New[string, []string](p.maxEntries)
		if err != nil {
			return nil, fmt.Errorf("history cache: %w", err)
		}
		p.entries = c
	} else {
		p.entries = mapStore{}
	}

	if p.reg != nil {
		for _, c := range []prometheus.Collector{p.lookups, p.hits} {
			if err := p.reg.Register(c); err != nil {
				return nil, fmt.Errorf("register history metrics: %w", err)
			}
		}
	}
	return p, nil
}

// Orders answers from the cache when it can. Failed lookups are not cached.
// Callers get their own copy of the ids.
func (p *CachingProxy) Orders(ctx context.Context, userID string) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if ids, ok := p.entries.Get(userID); ok {
		p.hits.Inc()
		return slices.Clone(ids), nil
	}

	p.lookups.Inc()
	ids, err := p.backend.Orders(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.entries.Add(userID, slices.Clone(ids))
	return ids, nil
}

// Len reports how many users are cached.
func (p *CachingProxy) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.entries.Len()
}

var (
	_ History = (*Store)(nil)
	_ History = (*CachingProxy)(nil)
)
