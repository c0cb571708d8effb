package http

import (
	"github.com/gin-gonic/gin"

	"student-productivity/internal/model"
	pkgErrors "student-productivity/pkg/errors"
)

func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, h.v.BindError(err)
	}
	return req, req.validate()
}

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
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
