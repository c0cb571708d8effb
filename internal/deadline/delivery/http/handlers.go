package http

import (
	"github.com/gin-gonic/gin"

	"student-productivity/internal/deadline"
	"student-productivity/pkg/response"
)

// DeadlineStatus godoc
// @Summary     Classify deadlines
// @Description Finds the next upcoming and closest deadline and formats every due date relative to today.
// @Tags        Engine
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body deadlineStatusReq true "Deadlines"
// @Success     200  {object} deadlineStatusResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/deadlines/status [POST]
func (h *handler) DeadlineStatus(c *gin.Context) {
	req, err := h.processDeadlineStatusReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	st := deadline.GetStatus(h.engine, req.Deadlines)
	response.OK(c, h.newDeadlineStatusResp(req.Deadlines, st))
}

// CourseStatus godoc
// @Summary     Course status label
// @Description Labels a course from its progress (0-100) and the days until its nearest deadline.
// @Tags        Engine
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body courseStatusReq true "Course facts"
// @Success     200  {object} courseStatusResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/courses/status [POST]
func (h *handler) CourseStatus(c *gin.Context) {
	req, err := h.processCourseStatusReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	st := deadline.GetCourseStatus(h.engine, req.Progress, req.Deadlines, req.TasksCount)
	response.OK(c, h.newCourseStatusResp(st))
}
