package http

import (
	"github.com/gin-gonic/gin"

	"student-productivity/internal/middleware"
)

// RegisterRoutes maps the engine endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/deadlines/status", mw.Auth(), h.DeadlineStatus)
	rg.POST("/courses/status", mw.Auth(), h.CourseStatus)
}
