package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth"
)

type loginRequest struct {
	Identifier string `json:"identifier"` // username or email
	Password   string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.credentials.Authenticate(
		c.Request.Context(),
		req.Identifier,
		req.Password,
	)

	if err != nil {
		switch {
		case errors.Is(err, auth.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, auth.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		}
		return
	}

	_, err = h.sessions.StartLocal(
		c.Request.Context(),
		c.Writer,
		c.Request,
		user.ID,
		user.Username,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "logged_in",
		"username": user.Username,
	})
}
