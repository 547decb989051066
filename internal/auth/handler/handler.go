package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth/credentials"
	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth/provider"
	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth/resolver"
	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/session"
)

type Handler struct {
	credentials   *credentials.Service
	providers     *provider.Registry
	resolver      resolver.Resolver
	sessions      *session.Manager
	states        StateStore
	secureCookies bool
}

func NewHandler(
	credentialService *credentials.Service,
	registry *provider.Registry,
	resolver resolver.Resolver,
	sessions *session.Manager,
	states StateStore,
	secureCookies bool,
) *Handler {
	return &Handler{
		credentials:   credentialService,
		providers:     registry,
		resolver:      resolver,
		sessions:      sessions,
		states:        states,
		secureCookies: secureCookies,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/auth/signup", h.Register)
	r.POST("/auth/login", h.Login)
	r.GET("/auth/google", h.oauthLogin)
	r.GET("/auth/google/callback", h.oauthCallback)
	r.POST("/auth/logout", h.Logout)
}

// Logout is idempotent: a missing or unknown session is not an error, and
// the cookie is cleared either way.
func (h *Handler) Logout(c *gin.Context) {
	h.sessions.End(c.Request.Context(), c.Writer, c.Request)
	c.Status(http.StatusNoContent)
}
