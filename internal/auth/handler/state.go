package handler

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

const (
	stateCookieName = "__oauth_state"
	stateTTL        = 5 * time.Minute
)

// StateStore records pending anti-forgery state tokens. Consume is
// single-shot: the second consume of the same token reports false, which
// rejects replayed callbacks even when the cookie still matches.
type StateStore interface {
	Save(ctx context.Context, state string, ttl time.Duration) error
	Consume(ctx context.Context, state string) (bool, error)
}

// RedisStateStore keeps pending states in Redis so single-use holds across
// instances.
type RedisStateStore struct {
	client *goredis.Client
	prefix string
}

func NewRedisStateStore(client *goredis.Client) *RedisStateStore {
	return &RedisStateStore{client: client, prefix: "oauthstate:"}
}

func (r *RedisStateStore) Save(ctx context.Context, state string, ttl time.Duration) error {
	return r.client.Set(ctx, r.prefix+state, "1", ttl).Err()
}

func (r *RedisStateStore) Consume(ctx context.Context, state string) (bool, error) {
	_, err := r.client.GetDel(ctx, r.prefix+state).Result()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (h *Handler) generateState(c *gin.Context) (string, error) {
	b := make([]byte, 32)
	_, _ = rand.Read(b)

	state := base64.RawURLEncoding.EncodeToString(b)

	if err := h.states.Save(c.Request.Context(), state, stateTTL); err != nil {
		return "", err
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(stateTTL.Seconds()),
	})

	return state, nil
}

// validateState checks the double-submit cookie and consumes the pending
// token. Both must hold; any miss fails closed.
func (h *Handler) validateState(c *gin.Context) bool {
	stateQuery := c.Query("state")
	if stateQuery == "" {
		return false
	}

	cookie, err := c.Request.Cookie(stateCookieName)
	if err != nil || cookie.Value != stateQuery {
		return false
	}

	ok, err := h.states.Consume(c.Request.Context(), stateQuery)
	if err != nil {
		return false
	}
	return ok
}
