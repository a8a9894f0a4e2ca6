package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backend/gestion-platform/app/api/client/response"
	"backend/gestion-platform/app/database/repository"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/manager"
	"backend/gestion-platform/app/pkg/i18n"
	"backend/gestion-platform/app/pkg/util/collection"
)

type StatsController struct {
	res      runtime.Resource
	managers *manager.Managers
}

func NewStatsController(managers *manager.Managers, res runtime.Resource) *StatsController {
	return &StatsController{
		res:      res,
		managers: managers,
	}
}

// TaskStats godoc
//
//	@Summary		Task statistics
//	@Description	Counts of active tasks per status and per pole. Status labels follow Accept-Language.
//	@Tags			stats
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.TaskStatsResponse
//	@Failure		401
//	@Failure		403
//	@Router			/api/v1/stats/tasks [get]
func (c *StatsController) TaskStats(ec echo.Context) error {
	actor, err := actorFrom(ec)
	if err != nil {
		return err
	}

	stats, err := c.managers.StatsManager.TaskStats(ec.Request().Context(), actor)
	if err != nil {
		return managerError(err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(newTaskStatsResponse(stats, langFrom(ec))))
}

func newTaskStatsResponse(stats *manager.TaskStats, lang i18n.Lang) response.TaskStatsResponse {
	return response.TaskStatsResponse{
		Total: stats.Total,
		ByStatus: collection.Map(stats.ByStatus, func(s repository.StatusCount) response.StatusStat {
			return response.StatusStat{Status: s.Status.String(), Label: s.Status.Label(lang), Count: s.Count}
		}),
		ByPole: collection.Map(stats.ByPole, func(p repository.PoleCount) response.PoleStat {
			return response.PoleStat{Pole: p.Pole, Count: p.Count}
		}),
		GeneratedAt: stats.GeneratedAt,
	}
}
