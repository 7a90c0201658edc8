package middleware

import (
	"time"

	"evtaxi-admin/internal/logging"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger emits a single structured log line per request at the boundary.
// Core query/aggregation code stays silent; this is the only place
// request traffic is logged.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logging.L().Info("http request",
			zap.String("request_id", GetRequestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		)
	}
}
