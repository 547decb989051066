package session

import (
	"context"
	"time"

	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth"
)

// Session is the server-side proof of authentication. Fixed shape: the
// identity fields are only ever written by Manager.StartLocal and
// Manager.StartFederated, never from caller-supplied data, and the kind is
// re-validated on every read.
type Session struct {
	SessionID    string            `json:"session_id"`
	IdentityID   int64             `json:"identity_id"`
	IdentityKind auth.IdentityKind `json:"identity_kind"`
	DisplayLabel string            `json:"display_label"`
	IssuedAt     time.Time         `json:"issued_at"`
	ExpiresAt    time.Time         `json:"expires_at"`
}

// Identity returns the tagged identity the session is bound to.
func (s Session) Identity() auth.Identity {
	return auth.Identity{
		Kind:  s.IdentityKind,
		ID:    s.IdentityID,
		Label: s.DisplayLabel,
	}
}

// Store defines how sessions are stored and retrieved.
// Implementations must remain stateless and opaque; Get returns (nil, nil)
// for an unknown id and Delete of an unknown id is not an error.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
