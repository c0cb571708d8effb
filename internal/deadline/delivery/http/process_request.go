package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processDeadlineStatusReq(c *gin.Context) (deadlineStatusReq, error) {
	var req deadlineStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, h.v.BindError(err)
	}
	return req, req.validate()
}

func (h *handler) processCourseStatusReq(c *gin.Context) (courseStatusReq, error) {
	var req courseStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, h.v.BindError(err)
	}
	return req, req.validate()
}
