package handler

import (
	"context"
	"sync"
	"time"
)

// MemoryStateStore is an in-process StateStore for tests and local
// development.
type MemoryStateStore struct {
	mu     sync.Mutex
	states map[string]time.Time // state -> expiry
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{states: make(map[string]time.Time)}
}

func (m *MemoryStateStore) Save(ctx context.Context, state string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[state] = time.Now().Add(ttl)
	return nil
}

func (m *MemoryStateStore) Consume(ctx context.Context, state string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	expiry, ok := m.states[state]
	if !ok {
		return false, nil
	}
	delete(m.states, state)

	if time.Now().After(expiry) {
		return false, nil
	}
	return true, nil
}
