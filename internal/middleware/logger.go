package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every request with structured fields.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)

		entry := logger.WithFields(logrus.Fields{
			"status":  c.Writer.Status(),
			"method":  c.Request.Method,
			"path":    path,
			"ip":      c.ClientIP(),
			"latency": latency,
			"length":  c.Writer.Size(),
		})

		if username, ok := GetUsername(c); ok {
			entry = entry.WithField("username", username)
		}

		if c.Writer.Status() >= 500 {
			entry.Error("HTTP Request")
		} else if c.Writer.Status() >= 400 {
			entry.Warn("HTTP Request")
		} else {
			entry.Info("HTTP Request")
		}
	}
}
