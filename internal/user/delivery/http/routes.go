package http

import (
	"github.com/gin-gonic/gin"

	"student-productivity/internal/middleware"
)

// RegisterRoutes maps the auth endpoints. Register and login are public.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/register", mw.RateLimit(), h.Register)
	rg.POST("/login", mw.RateLimit(), h.Login)
	rg.GET("/me", mw.Auth(), h.Me)
}
