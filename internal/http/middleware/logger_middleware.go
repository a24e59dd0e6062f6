package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pboachie/pi-lotto/internal/infrastructure/logger"
)

// LoggerMiddleware creates a middleware that logs HTTP requests in structured format
func LoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()

		requestID := ""
		if id, exists := c.Get("request_id"); exists {
			requestID = id.(string)
		}

		ctx := c.Request.Context()
		if requestID != "" {
			ctx = context.WithValue(ctx, "request_id", requestID)
		}
		if uid, exists := c.Get("uid"); exists {
			ctx = context.WithValue(ctx, "uid", uid)
		}

		log.WithRequest(
			ctx,
			c.Request.Method,
			c.Request.URL.Path,
			clientIP,
			c.Writer.Status(),
			latency.String(),
			c.Writer.Size(),
		).Info("HTTP Request Processed")
	}
}
