package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth/credentials"
	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth/handler"
	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth/provider"
	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth/provider/google"
	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth/resolver"
	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/config"
	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/middleware"
	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/rooms"
	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/session"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	cookieOpts := session.CookieOptions{
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}

	sessionStore := session.NewRedisStore(infra.Redis.Client)
	sessions := session.NewManager(sessionStore, cookieOpts, cfg.SessionTTL)

	credentialService := credentials.NewService(
		credentials.NewPostgresStore(infra.DB),
	)

	federatedResolver := resolver.NewDBResolver(infra.DB)

	googleProvider, err := google.New(
		ctx,
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
	)
	if err != nil {
		return nil, nil, err
	}

	registry := provider.NewRegistry(googleProvider)

	authHandler := handler.NewHandler(
		credentialService,
		registry,
		federatedResolver,
		sessions,
		handler.NewRedisStateStore(infra.Redis.Client),
		cfg.SecureCookies,
	)

	roomHandler := rooms.NewHandler(rooms.NewPostgresStore(infra.DB))

	authMiddleware := middleware.NewAuthMiddleware(sessions)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog())

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(authMiddleware))

	api.GET("/me", func(c *gin.Context) {
		identity, _ := middleware.IdentityFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"identity": identity})
	})

	// The original dashboard page, reduced to its auth check.
	api.GET("/dashboard", func(c *gin.Context) {
		identity, _ := middleware.IdentityFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"identity": identity,
		})
	})

	roomHandler.RegisterRoutes(api)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		if err := infra.Redis.Close(); err != nil {
			return err
		}
		return infra.DB.Close()
	}, nil
}
