package session

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth"
)

// Manager owns the session lifecycle. It is the only component that writes
// identity data into a session, which closes the fixation window: a session
// id is always freshly generated here, never accepted from the caller.
type Manager struct {
	store Store
	opts  CookieOptions
	ttl   time.Duration
}

func NewManager(store Store, opts CookieOptions, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{store: store, opts: opts, ttl: ttl}
}

// StartLocal issues a session bound to a local account.
func (m *Manager) StartLocal(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	identityID int64,
	label string,
) (Session, error) {
	return m.start(ctx, w, r, auth.KindLocal, identityID, label)
}

// StartFederated issues a session bound to a federated account.
func (m *Manager) StartFederated(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	identityID int64,
	label string,
) (Session, error) {
	return m.start(ctx, w, r, auth.KindFederated, identityID, label)
}

func (m *Manager) start(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	kind auth.IdentityKind,
	identityID int64,
	label string,
) (Session, error) {

	// Re-login overwrites, never merges: drop the previous session record
	// before the new cookie replaces the old one.
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		_ = m.store.Delete(ctx, cookie.Value)
	}

	id, err := GenerateID()
	if err != nil {
		return Session{}, err
	}

	now := time.Now()
	sess := Session{
		SessionID:    id,
		IdentityID:   identityID,
		IdentityKind: kind,
		DisplayLabel: label,
		IssuedAt:     now,
		ExpiresAt:    now.Add(m.ttl),
	}

	if err := m.store.Create(ctx, sess); err != nil {
		return Session{}, err
	}

	SetCookie(w, id, sess.ExpiresAt, m.opts)

	slog.Info("session issued",
		"identity_kind", kind,
		"identity_id", identityID,
	)

	return sess, nil
}

// Current returns the active session bound to the request, or nil. Expired
// or malformed records are deleted and treated as absent.
func (m *Manager) Current(ctx context.Context, r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	sess, err := m.store.Get(ctx, cookie.Value)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}

	if !sess.IdentityKind.Valid() || time.Now().After(sess.ExpiresAt) {
		_ = m.store.Delete(ctx, cookie.Value)
		return nil, nil
	}

	return sess, nil
}

// End destroys the session binding unconditionally. Ending a session that
// does not exist is not an error.
func (m *Manager) End(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		if err := m.store.Delete(ctx, cookie.Value); err != nil {
			slog.Warn("session delete failed", "error", err)
		}
	}
	ClearCookie(w, m.opts)
}
