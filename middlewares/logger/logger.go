package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sagarikadotcom/canaan-pet-resort/logger"
)

// GinLogger writes one structured line per request.
func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := logrus.Fields{
			"method":    c.Request.Method,
			"path":      path,
			"status":    status,
			"latency":   time.Since(start).String(),
			"client_ip": c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		switch {
		case status >= 500:
			logger.ErrorLogger.WithFields(fields).Error("Request failed")
		case status >= 400:
			logger.WarnLogger.WithFields(fields).Warn("Request rejected")
		default:
			logger.InfoLogger.WithFields(fields).Info("Request processed")
		}
	}
}
