package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth"
	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth/credentials"
)

type registerRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Register creates a local account. It does not issue a session; the user
// logs in afterwards.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.credentials.SignUp(c.Request.Context(), credentials.SignUpRequest{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})

	if err != nil {
		switch {
		case errors.Is(err, auth.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"error": "an account with that email already exists"})
		case errors.Is(err, auth.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "signup failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   "registered",
		"username": user.Username,
	})
}
