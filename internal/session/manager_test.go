package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth"
)

func newTestManager(store Store) *Manager {
	return NewManager(store, CookieOptions{}, time.Hour)
}

func requestWithCookie(sessionID string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if sessionID != "" {
		r.AddCookie(&http.Cookie{Name: CookieName, Value: sessionID})
	}
	return r
}

func TestManager_StartLocalAndCurrent(t *testing.T) {
	store := NewMemoryStore()
	m := newTestManager(store)

	rec := httptest.NewRecorder()
	sess, err := m.StartLocal(context.Background(), rec, requestWithCookie(""), 42, "alice")
	require.NoError(t, err)

	assert.Equal(t, int64(42), sess.IdentityID)
	assert.Equal(t, auth.KindLocal, sess.IdentityKind)
	assert.Equal(t, "alice", sess.DisplayLabel)
	assert.True(t, sess.ExpiresAt.After(time.Now()))

	// cookie issued
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, sess.SessionID, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	current, err := m.Current(context.Background(), requestWithCookie(sess.SessionID))
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, auth.Identity{Kind: auth.KindLocal, ID: 42, Label: "alice"}, current.Identity())
}

func TestManager_StartFederated(t *testing.T) {
	m := newTestManager(NewMemoryStore())

	rec := httptest.NewRecorder()
	sess, err := m.StartFederated(context.Background(), rec, requestWithCookie(""), 7, "Bob")
	require.NoError(t, err)

	assert.Equal(t, auth.KindFederated, sess.IdentityKind)
}

func TestManager_Current_NoSession(t *testing.T) {
	m := newTestManager(NewMemoryStore())

	current, err := m.Current(context.Background(), requestWithCookie(""))
	require.NoError(t, err)
	assert.Nil(t, current)

	current, err = m.Current(context.Background(), requestWithCookie("unknown-id"))
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestManager_Current_Expired(t *testing.T) {
	store := NewMemoryStore()
	m := newTestManager(store)

	expired := Session{
		SessionID:    "expired-session",
		IdentityID:   1,
		IdentityKind: auth.KindLocal,
		IssuedAt:     time.Now().Add(-2 * time.Hour),
		ExpiresAt:    time.Now().Add(-time.Hour),
	}
	require.NoError(t, store.Create(context.Background(), expired))

	current, err := m.Current(context.Background(), requestWithCookie("expired-session"))
	require.NoError(t, err)
	assert.Nil(t, current)

	// expired record removed on read
	got, err := store.Get(context.Background(), "expired-session")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestManager_Current_InvalidKindFailsClosed(t *testing.T) {
	store := NewMemoryStore()
	m := newTestManager(store)

	bad := Session{
		SessionID:    "bad-kind",
		IdentityID:   1,
		IdentityKind: "admin",
		IssuedAt:     time.Now(),
		ExpiresAt:    time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Create(context.Background(), bad))

	current, err := m.Current(context.Background(), requestWithCookie("bad-kind"))
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestManager_ReloginOverwritesPriorSession(t *testing.T) {
	store := NewMemoryStore()
	m := newTestManager(store)

	rec := httptest.NewRecorder()
	first, err := m.StartLocal(context.Background(), rec, requestWithCookie(""), 1, "alice")
	require.NoError(t, err)

	rec = httptest.NewRecorder()
	second, err := m.StartLocal(context.Background(), rec, requestWithCookie(first.SessionID), 2, "bob")
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)

	// prior record gone
	got, err := store.Get(context.Background(), first.SessionID)
	require.NoError(t, err)
	assert.Nil(t, got)

	current, err := m.Current(context.Background(), requestWithCookie(second.SessionID))
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, int64(2), current.IdentityID)
}

func TestManager_End_Idempotent(t *testing.T) {
	store := NewMemoryStore()
	m := newTestManager(store)

	rec := httptest.NewRecorder()
	sess, err := m.StartLocal(context.Background(), rec, requestWithCookie(""), 1, "alice")
	require.NoError(t, err)

	// ending an existing session removes it
	rec = httptest.NewRecorder()
	m.End(context.Background(), rec, requestWithCookie(sess.SessionID))

	current, err := m.Current(context.Background(), requestWithCookie(sess.SessionID))
	require.NoError(t, err)
	assert.Nil(t, current)

	// ending again, and ending with no session at all, are no-ops
	m.End(context.Background(), httptest.NewRecorder(), requestWithCookie(sess.SessionID))
	m.End(context.Background(), httptest.NewRecorder(), requestWithCookie(""))
}
