package rooms

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/middleware"
)

var joinCodePattern = regexp.MustCompile(`^[0-9]{6}$`)

// Handler exposes room operations. Every route sits behind the auth gate;
// the creator is stamped from the gate's identity, never from the body.
type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/rooms", h.Create)
	rg.GET("/rooms", h.Search)
	rg.POST("/rooms/:id/join", h.Join)
}

type createRequest struct {
	Name      string `json:"name"`
	JoinCode  string `json:"join_code"`
	GroupLink string `json:"group_link"`
}

func (h *Handler) Create(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Name == "" || req.GroupLink == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and group_link are required"})
		return
	}
	if !joinCodePattern.MatchString(req.JoinCode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "join_code must be 6 digits"})
		return
	}

	room := Room{
		ID:          uuid.NewString(),
		Name:        req.Name,
		JoinCode:    req.JoinCode,
		GroupLink:   req.GroupLink,
		CreatorID:   identity.ID,
		CreatorKind: identity.Kind,
	}

	if err := h.store.Create(c.Request.Context(), room); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create room"})
		return
	}

	c.JSON(http.StatusCreated, room)
}

func (h *Handler) Search(c *gin.Context) {
	result, err := h.store.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rooms"})
		return
	}
	if result == nil {
		result = []Room{}
	}
	// The group link is only handed out on a successful join.
	for i := range result {
		result[i].GroupLink = ""
	}
	c.JSON(http.StatusOK, gin.H{"rooms": result})
}

type joinRequest struct {
	JoinCode string `json:"join_code"`
}

// Join hands out the group link when the code matches. The code is a
// plaintext shared secret by design of the original system.
func (h *Handler) Join(c *gin.Context) {
	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	room, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load room"})
		return
	}

	if req.JoinCode != room.JoinCode {
		c.JSON(http.StatusForbidden, gin.H{"error": ErrWrongJoinCode.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "joined",
		"group_link": room.GroupLink,
	})
}
