package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLog logs one line per request. Credentials, tokens and session ids
// never appear here.
func RequestLog() gin.HandlerFunc {
	return RequestLogWith(slog.Default())
}

func RequestLogWith(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		t := time.Now()

		c.Next()

		l.Info("request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(t),
			"ip", c.ClientIP(),
		)
	}
}
