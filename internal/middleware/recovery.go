package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"student-productivity/pkg/response"
)

// Recovery turns panics into 500 responses and reports them.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				ctx := c.Request.Context()
				err := fmt.Errorf("panic: %v", rec)
				m.l.Errorf(ctx, "middleware.Recovery: %s %s: %v", c.Request.Method, c.FullPath(), rec)
				m.reporter.Report(ctx, err, map[string]any{
					"method": c.Request.Method,
					"path":   c.FullPath(),
				})
				response.InternalError(c, err)
				c.Abort()
			}
		}()
		c.Next()
	}
}
