package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"student-productivity/pkg/log"
	"student-productivity/pkg/response"
	"student-productivity/pkg/scope"
)

const bearerPrefix = "Bearer "

// Auth rejects requests without a valid bearer token and stores the
// verified claims in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		ctx := scope.SetPayloadToContext(c.Request.Context(), payload)
		ctx = log.WithFields(ctx, "user_id", payload.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
