package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/arcanosig/arcano/backend/internal/metrics"
)

// RequestLogger logs each request with its request_id and records its latency.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, route, c.Writer.Status(), latency)

		fields := logrus.Fields{
			"status":  c.Writer.Status(),
			"method":  c.Request.Method,
			"path":    SanitizePath(c.Request.URL.Path),
			"latency": latency.String(),
			"client":  c.ClientIP(),
		}
		if u := CurrentUser(c); u != nil {
			fields["user_id"] = u.ID
		}
		entry := GetRequestLogger(c).WithFields(fields)
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("handled request")
		case c.Writer.Status() >= 400:
			entry.Warn("handled request")
		default:
			entry.Info("handled request")
		}
	}
}
