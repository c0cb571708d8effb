package http

import (
	"github.com/gin-gonic/gin"

	"student-productivity/internal/model"
	pkgErrors "student-productivity/pkg/errors"
)

type validatable interface {
	validate() error
}

// bindJSON binds the body into req and runs its own checks.
func bindJSON[T validatable](h *handler, c *gin.Context) (T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, h.v.BindError(err)
	}
	return req, req.validate()
}

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.ScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

func (h *handler) processCourseReq(c *gin.Context) (model.Scope, courseReq, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, courseReq{}, err
	}
	req, err := bindJSON[courseReq](h, c)
	return sc, req, err
}

func (h *handler) processCreateTaskReq(c *gin.Context) (model.Scope, createTaskReq, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, createTaskReq{}, err
	}
	req, err := bindJSON[createTaskReq](h, c)
	return sc, req, err
}

func (h *handler) processUpdateTaskReq(c *gin.Context) (model.Scope, updateTaskReq, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, updateTaskReq{}, err
	}
	req, err := bindJSON[updateTaskReq](h, c)
	return sc, req, err
}

func (h *handler) processImportTasksReq(c *gin.Context) (model.Scope, importTasksReq, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, importTasksReq{}, err
	}
	req, err := bindJSON[importTasksReq](h, c)
	return sc, req, err
}

func (h *handler) processCreateDeadlineReq(c *gin.Context) (model.Scope, createDeadlineReq, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, createDeadlineReq{}, err
	}
	req, err := bindJSON[createDeadlineReq](h, c)
	return sc, req, err
}

// processSyncCalendarReq accepts an empty body.
func (h *handler) processSyncCalendarReq(c *gin.Context) (model.Scope, syncCalendarReq, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, syncCalendarReq{}, err
	}
	if c.Request.ContentLength == 0 {
		return sc, syncCalendarReq{}, nil
	}
	req, err := bindJSON[syncCalendarReq](h, c)
	return sc, req, err
}
