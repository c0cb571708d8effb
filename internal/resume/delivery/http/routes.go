package http

import (
	"github.com/gin-gonic/gin"

	"student-productivity/internal/middleware"
)

// RegisterRoutes maps the resume endpoints. Analysis is rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/analyze", mw.Auth(), mw.RateLimit(), h.Analyze)
}
