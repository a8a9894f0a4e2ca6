package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"backend/gestion-platform/app/api/client/response"
	"backend/gestion-platform/app/internal/runtime"
)

const (
	healthUp       = "up"
	healthDown     = "down"
	healthDegraded = "degraded"
)

type HealthController struct {
	res runtime.Resource
}

func NewHealthController(res runtime.Resource) *HealthController {
	return &HealthController{
		res: res,
	}
}

// HealthCheck godoc
//
//	@Summary		Verify health
//	@Description	Pings the database and redis
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	response.HealthResponse
//	@Failure		503	{object}	response.HealthResponse
//	@Router			/health [get]
func (c *HealthController) HealthCheck(ec echo.Context) error {
	ctx, cancel := context.WithTimeout(ec.Request().Context(), 2*time.Second)
	defer cancel()

	health := response.HealthResponse{Status: healthUp}
	if c.res.DB != nil {
		health.Database = healthUp
		if err := c.res.DB.PrimaryConn().PingContext(ctx); err != nil {
			c.res.Logger.Error("Database health check failed", zap.Error(err))
			health.Database = healthDown
			health.Status = healthDegraded
		}
	}
	if c.res.Redis != nil && c.res.Redis.GetUniversalClient() != nil {
		health.Redis = healthUp
		if err := c.res.Redis.GetUniversalClient().Ping(ctx).Err(); err != nil {
			c.res.Logger.Warn("Redis health check failed", zap.Error(err))
			health.Redis = healthDown
			health.Status = healthDegraded
		}
	}

	status := http.StatusOK
	if health.Database == healthDown {
		status = http.StatusServiceUnavailable
	}
	return ec.JSON(status, response.ToSuccessResponse(health))
}
