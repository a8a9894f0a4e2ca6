package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backend/gestion-platform/app/api/client/request"
	"backend/gestion-platform/app/api/client/response"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/manager"
)

type TaskController struct {
	res      runtime.Resource
	managers *manager.Managers
}

func NewTaskController(managers *manager.Managers, res runtime.Resource) *TaskController {
	return &TaskController{
		res:      res,
		managers: managers,
	}
}

// ListTasks godoc
//
//	@Summary		List tasks
//	@Description	Labels follow Accept-Language (fr or ar).
//	@Tags			tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Param			status		query		string	false	"Status"
//	@Param			priority	query		string	false	"Priority"
//	@Param			pole		query		string	false	"Pole"
//	@Param			created_by	query		int		false	"Creator id"
//	@Param			assignee	query		int		false	"Assignee id"
//	@Param			all			query		bool	false	"Include soft deleted tasks"
//	@Param			page		query		int		false	"Page"
//	@Param			size		query		int		false	"Page size"
//	@Success		200			{object}	[]response.TaskResponse
//	@Failure		400
//	@Failure		401
//	@Failure		403
//	@Router			/api/v1/tasks [get]
func (c *TaskController) List(ec echo.Context) error {
	actor, err := actorFrom(ec)
	if err != nil {
		return err
	}
	var req request.ListTasksRequest
	if err := bindAndValidate(ec, &req); err != nil {
		return err
	}

	tasks, total, err := c.managers.TaskManager.List(ec.Request().Context(), actor, req)
	if err != nil {
		return managerError(err)
	}
	return ec.JSON(http.StatusOK, listResponse(response.NewTaskResponses(tasks, langFrom(ec)), total, req.PaginationRequest))
}

// GetTask godoc
//
//	@Summary	Get task
//	@Tags		tasks
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Task id"
//	@Success	200	{object}	response.TaskResponse
//	@Failure	400
//	@Failure	404
//	@Router		/api/v1/tasks/{id} [get]
func (c *TaskController) Get(ec echo.Context) error {
	actor, err := actorFrom(ec)
	if err != nil {
		return err
	}
	id, err := pathID(ec, "id")
	if err != nil {
		return err
	}

	t, err := c.managers.TaskManager.Get(ec.Request().Context(), actor, id)
	if err != nil {
		return managerError(err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(response.NewTaskResponse(t, langFrom(ec))))
}

// CreateTask godoc
//
//	@Summary	Create task
//	@Tags		tasks
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		request.CreateTaskRequest	true	"Task"
//	@Success	201		{object}	response.TaskResponse
//	@Failure	400
//	@Failure	403
//	@Router		/api/v1/tasks [post]
func (c *TaskController) Create(ec echo.Context) error {
	actor, err := actorFrom(ec)
	if err != nil {
		return err
	}
	var req request.CreateTaskRequest
	if err := bindAndValidate(ec, &req); err != nil {
		return err
	}

	t, err := c.managers.TaskManager.Create(ec.Request().Context(), actor, req)
	if err != nil {
		return managerError(err)
	}
	return ec.JSON(http.StatusCreated, response.ToSuccessResponse(response.NewTaskResponse(t, langFrom(ec))))
}

// UpdateTask godoc
//
//	@Summary		Update task
//	@Description	Partial update by the creator, the assignee or a manager.
//	@Tags			tasks
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int							true	"Task id"
//	@Param			request	body		request.UpdateTaskRequest	true	"Changes"
//	@Success		200		{object}	response.TaskResponse
//	@Failure		400
//	@Failure		403
//	@Failure		404
//	@Router			/api/v1/tasks/{id} [put]
func (c *TaskController) Update(ec echo.Context) error {
	actor, err := actorFrom(ec)
	if err != nil {
		return err
	}
	id, err := pathID(ec, "id")
	if err != nil {
		return err
	}
	var req request.UpdateTaskRequest
	if err := bindAndValidate(ec, &req); err != nil {
		return err
	}

	t, err := c.managers.TaskManager.Update(ec.Request().Context(), actor, id, req)
	if err != nil {
		return managerError(err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(response.NewTaskResponse(t, langFrom(ec))))
}

// DeleteTask godoc
//
//	@Summary		Delete task
//	@Description	Soft delete: the task is deactivated and kept.
//	@Tags			tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Task id"
//	@Success		200	{object}	response.TaskResponse
//	@Failure		400
//	@Failure		403
//	@Failure		404
//	@Router			/api/v1/tasks/{id} [delete]
func (c *TaskController) Delete(ec echo.Context) error {
	actor, err := actorFrom(ec)
	if err != nil {
		return err
	}
	id, err := pathID(ec, "id")
	if err != nil {
		return err
	}

	t, err := c.managers.TaskManager.Delete(ec.Request().Context(), actor, id)
	if err != nil {
		return managerError(err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(response.NewTaskResponse(t, langFrom(ec))))
}
