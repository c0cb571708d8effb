package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs one line per request. Server errors log at error level.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		latency := time.Since(start)

		if status >= 500 {
			m.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, path, status, latency)
			return
		}
		m.l.Infof(ctx, "%s %s %d %s", c.Request.Method, path, status, latency)
	}
}
