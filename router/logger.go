package router

import (
	"time"

	"classificador/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger logs method, path, status, latency and request id.
func Logger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", middleware.RequestID(c)),
		)
	}
}
