package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger logs the start and the end of every request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := zap.S().Named("http")
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		log.Debugw("request started",
			"method", c.Request.Method,
			"path", path,
			"query", query,
			"ip", c.ClientIP(),
			"user-agent", c.Request.UserAgent(),
			"time", start.Format(time.RFC3339),
		)

		c.Next()

		if len(c.Errors) > 0 {
			for _, e := range c.Errors.Errors() {
				log.Errorw("request error", "method", c.Request.Method, "path", path, "error", e)
			}
		}

		log.Infow("request finished",
			"method", c.Request.Method,
			"path", path,
			"query", query,
			"ip", c.ClientIP(),
			"user-agent", c.Request.UserAgent(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
