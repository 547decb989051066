package resolver

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth"
)

// MemoryResolver is an in-process Resolver for tests and local development.
type MemoryResolver struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]SSOUser // keyed by subject
}

func NewMemoryResolver() *MemoryResolver {
	return &MemoryResolver{nextID: 1, users: make(map[string]SSOUser)}
}

func (r *MemoryResolver) Upsert(
	ctx context.Context,
	identity *auth.ExternalIdentity,
) (SSOUser, bool, error) {

	if identity == nil {
		return SSOUser{}, false, errors.New("identity is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()

	if u, ok := r.users[identity.Subject]; ok {
		u.Name = identity.Name
		u.Picture = identity.Picture
		u.LastLogin = now
		r.users[identity.Subject] = u
		return u, false, nil
	}

	u := SSOUser{
		ID:        r.nextID,
		GoogleID:  identity.Subject,
		Email:     identity.Email,
		Name:      identity.Name,
		Picture:   identity.Picture,
		CreatedAt: now,
		LastLogin: now,
	}
	r.nextID++
	r.users[identity.Subject] = u
	return u, true, nil
}
