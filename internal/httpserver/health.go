package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "student-productivity/pkg/errors"
	"student-productivity/pkg/response"
)

// Service identity reported by the probes and the MCP server.
const (
	HealthVersion = "1.0.0"
	ServiceName   = "student-productivity"
)

type probeResp struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func probe(status string) probeResp {
	return probeResp{Status: status, Service: ServiceName, Version: HealthVersion}
}

// healthCheck
// @Summary     Health check
// @Description The process is up and serving HTTP.
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp{data=probeResp}
// @Router      /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, probe("healthy"))
}

// readyCheck answers 503 until the database responds to a ping.
// @Summary     Readiness check
// @Description Ready to serve traffic: the database answers a ping.
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp{data=probeResp}
// @Failure     503 {object} response.Resp "Database unavailable"
// @Router      /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := srv.db.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "database unavailable"))
		return
	}
	response.OK(c, probe("ready"))
}

// liveCheck
// @Summary     Liveness check
// @Description The process has not deadlocked.
// @Tags        Health
// @Produce     json
// @Success     200 {object} response.Resp{data=probeResp}
// @Router      /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, probe("alive"))
}
