package credentials

import (
	"context"
	"sync"
	"time"

	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth"
)

// MemoryStore is an in-process Store with the same uniqueness guarantees as
// the Postgres schema. Used by tests and local development without a
// database.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	users  []LocalUser
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) FindByIdentifier(ctx context.Context, identifier string) (LocalUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// users is append-only and ordered by id, so the first match is the
	// lowest id.
	for _, u := range s.users {
		if u.Username == identifier || u.Email == identifier {
			return u, nil
		}
	}
	return LocalUser{}, auth.ErrNoAccount
}

func (s *MemoryStore) Create(ctx context.Context, r CreateRequest) (LocalUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == r.Email {
			return LocalUser{}, auth.ErrDuplicateEmail
		}
	}

	u := LocalUser{
		ID:             s.nextID,
		Username:       r.Username,
		Email:          r.Email,
		PasswordDigest: r.PasswordDigest,
		CreatedAt:      time.Now().UTC(),
	}
	s.nextID++
	s.users = append(s.users, u)
	return u, nil
}
