package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "restaurant-bot/pkg/errors"
	"restaurant-bot/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Restaurant bot is serving"
	HealthVersion = "1.0.0"
	ServiceName   = "restaurant-bot"
)

// ReadinessFunc reports component details, or an error when the service
// cannot take traffic.
type ReadinessFunc func(ctx context.Context) (map[string]any, error)

func status(s string) gin.H {
	return gin.H{
		"status":  s,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, status("healthy"))
}

// readyCheck reports the loaded catalog and classifiers and checks the
// session store.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Not ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	body := status("ready")
	if srv.ready != nil {
		details, err := srv.ready(c.Request.Context())
		if err != nil {
			srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: %v", err)
			response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "not ready"), nil)
			return
		}
		for k, v := range details {
			body[k] = v
		}
	}
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, status("alive"))
}
