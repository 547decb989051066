package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth"
	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/session"
)

// unexported, collision-proof context key
type identityContextKeyType struct{}

var identityKey = identityContextKeyType{}

// IdentityFromContext extracts the authenticated identity from context.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(auth.Identity)
	return id, ok
}

// AuthMiddleware is the authorization gate: it performs a session lookup
// and nothing else. Protected handlers read the identity from context.
type AuthMiddleware struct {
	Sessions *session.Manager
}

func NewAuthMiddleware(sessions *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{Sessions: sessions}
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := a.Sessions.Current(r.Context(), r)
		if err != nil || sess == nil {
			unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, sess.Identity())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": auth.ErrUnauthenticated.Error(),
	})
}
