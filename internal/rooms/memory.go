package rooms

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryStore is an in-process Store for tests and local development.
type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string]Room
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rooms: make(map[string]Room)}
}

func (s *MemoryStore) Create(ctx context.Context, room Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.ID] = room
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	if !ok {
		return Room{}, ErrNotFound
	}
	return room, nil
}

func (s *MemoryStore) Search(ctx context.Context, q string) ([]Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q = strings.ToLower(q)
	var result []Room
	for _, room := range s.rooms {
		if q == "" || strings.Contains(strings.ToLower(room.Name), q) {
			result = append(result, room)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
