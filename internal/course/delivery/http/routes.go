package http

import (
	"github.com/gin-gonic/gin"

	"student-productivity/internal/middleware"
)

// RegisterRoutes maps the course endpoints under rg. All of them require auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	courses := rg.Group("/courses", mw.Auth())
	{
		courses.POST("", h.CreateCourse)
		courses.GET("", h.ListCourses)
		courses.GET("/:id", h.GetCourse)
		courses.PUT("/:id", h.UpdateCourse)
		courses.DELETE("/:id", h.DeleteCourse)

		courses.POST("/:id/tasks", h.CreateTask)
		courses.POST("/:id/tasks/import", h.ImportTasks)
		courses.PUT("/:id/tasks/:task_id", h.UpdateTask)
		courses.DELETE("/:id/tasks/:task_id", h.DeleteTask)

		courses.POST("/:id/deadlines", h.CreateDeadline)
		courses.DELETE("/:id/deadlines/:deadline_id", h.DeleteDeadline)
		courses.POST("/:id/calendar/sync", h.SyncCalendar)
	}

	rg.GET("/dashboard", mw.Auth(), h.Dashboard)
}
