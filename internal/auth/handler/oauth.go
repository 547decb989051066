package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth"
)

const googleProvider = "google"

// oauthLogin starts a federated attempt: mint a single-use state token and
// a PKCE verifier, then hand the caller to the provider.
func (h *Handler) oauthLogin(c *gin.Context) {
	p, err := h.providers.Get(googleProvider)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown oauth provider"})
		return
	}

	state, err := h.generateState(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start login"})
		return
	}
	_, codeChallenge := h.generatePKCE(c)

	c.Redirect(http.StatusFound, p.AuthCodeURL(state, codeChallenge))
}

// oauthCallback finishes the attempt. Every failure path ends without a
// session; there is no partial authentication.
func (h *Handler) oauthCallback(c *gin.Context) {
	p, err := h.providers.Get(googleProvider)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown oauth provider"})
		return
	}

	if errParam := c.Query("error"); errParam != "" {
		slog.Warn("oidc callback returned error",
			"provider", googleProvider,
			"error", errParam,
			"desc", c.Query("error_description"),
		)
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrProviderDenied.Error()})
		return
	}

	if !h.validateState(c) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidState.Error()})
		return
	}

	code := c.Query("code")
	if code == "" {
		slog.Error("oidc callback missing code and error")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code"})
		return
	}

	codeVerifier := getPKCEVerifier(c)
	if codeVerifier == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing pkce verifier"})
		return
	}

	identity, err := p.ExchangeCode(c.Request.Context(), code, codeVerifier)
	if err != nil {
		if errors.Is(err, auth.ErrMissingIdentityClaims) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrMissingIdentityClaims.Error()})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrProviderExchange.Error()})
		return
	}

	user, isNew, err := h.resolver.Upsert(c.Request.Context(), identity)
	if err != nil {
		slog.Error("failed to resolve federated user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve user"})
		return
	}

	label := user.Name
	if label == "" {
		label = user.Email
	}

	_, err = h.sessions.StartFederated(
		c.Request.Context(),
		c.Writer,
		c.Request,
		user.ID,
		label,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return
	}

	message := "Welcome back, " + label
	if isNew {
		message = "Welcome to Pro Rooms, " + label
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "authenticated",
		"new_user": isNew,
		"message":  message,
	})
}
