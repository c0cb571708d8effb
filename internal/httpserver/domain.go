package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	courseHTTP "student-productivity/internal/course/delivery/http"
	courseRepo "student-productivity/internal/course/repository/sqlite"
	courseUC "student-productivity/internal/course/usecase"
	deadlineHTTP "student-productivity/internal/deadline/delivery/http"
	"student-productivity/internal/middleware"
	resumeHTTP "student-productivity/internal/resume/delivery/http"
	resumeUC "student-productivity/internal/resume/usecase"
	userHTTP "student-productivity/internal/user/delivery/http"
	userRepo "student-productivity/internal/user/repository/sqlite"
	userUC "student-productivity/internal/user/usecase"
)

// Each domain is wired the same way:
//  1. Repository
//  2. UseCase
//  3. HTTP Handler
//  4. Routes

// setupUserDomain registers /api/v1/auth.
func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := userRepo.New(srv.db, srv.l)
	uc := userUC.New(repo, srv.jwtManager, srv.l, srv.hashCost)
	h := userHTTP.New(srv.l, uc, srv.validator, srv.reporter)
	userHTTP.RegisterRoutes(api.Group("/auth"), h, mw)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}

// setupDeadlineDomain registers the stateless engine endpoints.
func (srv HTTPServer) setupDeadlineDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := deadlineHTTP.New(srv.l, srv.engine, srv.validator)
	deadlineHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Deadline domain registered")
	return nil
}

// setupCourseDomain registers /api/v1/courses and /api/v1/dashboard.
func (srv HTTPServer) setupCourseDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := courseRepo.New(srv.db, srv.l)
	uc := courseUC.New(repo, srv.engine, srv.checklist, srv.calendar, srv.calendarID, srv.l)
	h := courseHTTP.New(srv.l, uc, srv.validator, srv.reporter)
	courseHTTP.RegisterRoutes(api, h, mw)

	if srv.calendar == nil {
		srv.l.Infof(ctx, "Course domain registered (calendar sync disabled)")
	} else {
		srv.l.Infof(ctx, "Course domain registered")
	}
	return nil
}

// setupResumeDomain registers /api/v1/resume.
func (srv HTTPServer) setupResumeDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := resumeUC.New(srv.generator, srv.l)
	h := resumeHTTP.New(srv.l, uc, srv.validator, srv.reporter)
	resumeHTTP.RegisterRoutes(api.Group("/resume"), h, mw)

	srv.l.Infof(ctx, "Resume domain registered")
	return nil
}
