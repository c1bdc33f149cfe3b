package handler

import (
	"net/http"
	"time"

	"mutualaid/config"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Config *config.Config
}

// HealthHandler reports process liveness.
type HealthHandler struct {
	serviceName string
	startedAt   time.Time
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		serviceName: params.Config.Env.ServiceName,
		startedAt:   time.Now(),
	}
}

// Check reports service status and uptime.
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": h.serviceName,
		"uptime":  time.Since(h.startedAt).Round(time.Second).String(),
	})
}
