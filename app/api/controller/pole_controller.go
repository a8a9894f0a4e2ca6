package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backend/gestion-platform/app/api/client/request"
	"backend/gestion-platform/app/api/client/response"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/manager"
)

type PoleController struct {
	res      runtime.Resource
	managers *manager.Managers
}

func NewPoleController(managers *manager.Managers, res runtime.Resource) *PoleController {
	return &PoleController{
		res:      res,
		managers: managers,
	}
}

// ListPoles godoc
//
//	@Summary	List poles
//	@Tags		poles
//	@Produce	json
//	@Security	BearerAuth
//	@Param		all		query		bool	false	"Include inactive poles"
//	@Param		page	query		int		false	"Page"
//	@Param		size	query		int		false	"Page size"
//	@Success	200		{object}	[]response.PoleResponse
//	@Failure	401
//	@Failure	403
//	@Router		/api/v1/poles [get]
func (c *PoleController) List(ec echo.Context) error {
	actor, err := actorFrom(ec)
	if err != nil {
		return err
	}
	var req request.ListPolesRequest
	if err := bindAndValidate(ec, &req); err != nil {
		return err
	}

	poles, total, err := c.managers.PoleManager.List(ec.Request().Context(), actor, req)
	if err != nil {
		return managerError(err)
	}
	return ec.JSON(http.StatusOK, listResponse(response.NewPoleResponses(poles), total, req.PaginationRequest))
}

// GetPole godoc
//
//	@Summary	Get pole
//	@Tags		poles
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Pole id"
//	@Success	200	{object}	response.PoleResponse
//	@Failure	400
//	@Failure	404
//	@Router		/api/v1/poles/{id} [get]
func (c *PoleController) Get(ec echo.Context) error {
	actor, err := actorFrom(ec)
	if err != nil {
		return err
	}
	id, err := pathID(ec, "id")
	if err != nil {
		return err
	}

	p, err := c.managers.PoleManager.Get(ec.Request().Context(), actor, id)
	if err != nil {
		return managerError(err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(response.NewPoleResponse(p)))
}

// CreatePole godoc
//
//	@Summary	Create pole
//	@Tags		poles
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		request.CreatePoleRequest	true	"Pole"
//	@Success	201		{object}	response.PoleResponse
//	@Failure	400
//	@Failure	403
//	@Failure	409
//	@Router		/api/v1/poles [post]
func (c *PoleController) Create(ec echo.Context) error {
	actor, err := actorFrom(ec)
	if err != nil {
		return err
	}
	var req request.CreatePoleRequest
	if err := bindAndValidate(ec, &req); err != nil {
		return err
	}

	p, err := c.managers.PoleManager.Create(ec.Request().Context(), actor, req)
	if err != nil {
		return managerError(err)
	}
	return ec.JSON(http.StatusCreated, response.ToSuccessResponse(response.NewPoleResponse(p)))
}

// UpdatePole godoc
//
//	@Summary	Update pole
//	@Tags		poles
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int							true	"Pole id"
//	@Param		request	body		request.UpdatePoleRequest	true	"Changes"
//	@Success	200		{object}	response.PoleResponse
//	@Failure	400
//	@Failure	403
//	@Failure	404
//	@Failure	409
//	@Router		/api/v1/poles/{id} [put]
func (c *PoleController) Update(ec echo.Context) error {
	actor, err := actorFrom(ec)
	if err != nil {
		return err
	}
	id, err := pathID(ec, "id")
	if err != nil {
		return err
	}
	var req request.UpdatePoleRequest
	if err := bindAndValidate(ec, &req); err != nil {
		return err
	}

	p, err := c.managers.PoleManager.Update(ec.Request().Context(), actor, id, req)
	if err != nil {
		return managerError(err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(response.NewPoleResponse(p)))
}

// DeletePole godoc
//
//	@Summary	Delete pole
//	@Tags		poles
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Pole id"
//	@Success	200	{object}	response.PoleResponse
//	@Failure	400
//	@Failure	403
//	@Failure	404
//	@Router		/api/v1/poles/{id} [delete]
func (c *PoleController) Delete(ec echo.Context) error {
	actor, err := actorFrom(ec)
	if err != nil {
		return err
	}
	id, err := pathID(ec, "id")
	if err != nil {
		return err
	}

	p, err := c.managers.PoleManager.Delete(ec.Request().Context(), actor, id)
	if err != nil {
		return managerError(err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(response.NewPoleResponse(p)))
}
