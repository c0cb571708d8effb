package http

import (
	"github.com/gin-gonic/gin"

	"student-productivity/internal/model"
	pkgErrors "student-productivity/pkg/errors"
)

func (h *handler) processAnalyzeReq(c *gin.Context) (model.Scope, analyzeReq, error) {
	sc, ok := model.ScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, analyzeReq{}, pkgErrors.ErrUnauthorized
	}

	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, h.v.BindError(err)
	}
	return sc, req, req.validate()
}
