package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"cab/internal/logger"
)

// RequestLogger returns middleware that logs one structured line per request.
func RequestLogger(log logger.ILogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)),
			logger.String("client_ip", c.ClientIP()),
		}

		if len(c.Errors) > 0 {
			fields = append(fields, logger.String("errors", c.Errors.String()))
			log.Error("request", fields...)
			return
		}

		if c.Writer.Status() >= 500 {
			log.Error("request", fields...)
			return
		}

		log.Info("request", fields...)
	}
}
