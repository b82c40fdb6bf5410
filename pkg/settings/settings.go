// Package settings holds the process-wide key/value configuration store.
//
// There is exactly one Manager per process. It is created on the first call
// to Instance and lives until the process exits; every caller shares it.
package settings

import (
	"fmt"
	"maps"
	"sync"
)

type Manager struct {
	mu     sync.RWMutex
	values map[string]any
}

var (
	instance *Manager
	once     sync.Once
)

// Instance returns the shared Manager, creating it on first use.
func Instance() *Manager {
	once.Do(func() {
		instance = &Manager{values: make(map[string]any)}
	})
	return instance
}

func (m *Manager) Set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *Manager) Get(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// GetString returns the value for key formatted as a string, or "" if unset.
func (m *Manager) GetString(key string) string {
	v, ok := m.Get(key)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Merge copies values into the store, overwriting existing keys.
func (m *Manager) Merge(values map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	maps.Copy(m.values, values)
}
