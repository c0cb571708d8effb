package http

import (
	"github.com/gin-gonic/gin"

	"student-productivity/pkg/response"
)

// Analyze godoc
// @Summary     Match a resume against a job description
// @Description Scores keyword overlap and returns recommendations, generated by a language model when one is configured.
// @Tags        Resume
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body analyzeReq true "Resume and job description"
// @Success     200  {object} analyzeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/resume/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(ctx, err))
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}
