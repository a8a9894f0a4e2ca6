package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backend/gestion-platform/app/api/client/request"
	"backend/gestion-platform/app/api/client/response"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/manager"
)

type UserController struct {
	res      runtime.Resource
	managers *manager.Managers
}

func NewUserController(managers *manager.Managers, res runtime.Resource) *UserController {
	return &UserController{
		res:      res,
		managers: managers,
	}
}

// ListUsers godoc
//
//	@Summary		List users
//	@Description	Active users by default. Inactive accounts need the user listing permission.
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			role		query		string	false	"Role"
//	@Param			pole		query		string	false	"Pole"
//	@Param			email		query		string	false	"Email"
//	@Param			is_active	query		bool	false	"Active flag"
//	@Param			all			query		bool	false	"Include inactive users"
//	@Param			page		query		int		false	"Page"
//	@Param			size		query		int		false	"Page size"
//	@Success		200			{object}	[]response.UserResponse
//	@Failure		400
//	@Failure		401
//	@Failure		403
//	@Router			/api/v1/users [get]
func (c *UserController) List(ec echo.Context) error {
	actor, err := actorFrom(ec)
	if err != nil {
		return err
	}
	var req request.ListUsersRequest
	if err := bindAndValidate(ec, &req); err != nil {
		return err
	}

	users, total, err := c.managers.UserManager.List(ec.Request().Context(), actor, req)
	if err != nil {
		return managerError(err)
	}
	return ec.JSON(http.StatusOK, listResponse(response.NewUserResponses(users), total, req.PaginationRequest))
}

// GetUser godoc
//
//	@Summary	Get user
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"User id"
//	@Success	200	{object}	response.UserResponse
//	@Failure	400
//	@Failure	403
//	@Failure	404
//	@Router		/api/v1/users/{id} [get]
func (c *UserController) Get(ec echo.Context) error {
	actor, err := actorFrom(ec)
	if err != nil {
		return err
	}
	id, err := pathID(ec, "id")
	if err != nil {
		return err
	}

	user, err := c.managers.UserManager.Get(ec.Request().Context(), actor, id)
	if err != nil {
		return managerError(err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(response.NewUserResponse(user)))
}

// CreateUser godoc
//
//	@Summary	Create user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		request.CreateUserRequest	true	"User"
//	@Success	201		{object}	response.UserResponse
//	@Failure	400
//	@Failure	403
//	@Failure	409
//	@Router		/api/v1/users [post]
func (c *UserController) Create(ec echo.Context) error {
	actor, err := actorFrom(ec)
	if err != nil {
		return err
	}
	var req request.CreateUserRequest
	if err := bindAndValidate(ec, &req); err != nil {
		return err
	}

	user, err := c.managers.UserManager.Create(ec.Request().Context(), actor, req)
	if err != nil {
		return managerError(err)
	}
	return ec.JSON(http.StatusCreated, response.ToSuccessResponse(response.NewUserResponse(user)))
}

// UpdateUser godoc
//
//	@Summary		Update user
//	@Description	Partial update. Only keys present in the body change.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int							true	"User id"
//	@Param			request	body		request.UpdateUserRequest	true	"Changes"
//	@Success		200		{object}	response.UserResponse
//	@Failure		400
//	@Failure		403
//	@Failure		404
//	@Failure		409
//	@Router			/api/v1/users/{id} [put]
func (c *UserController) Update(ec echo.Context) error {
	actor, err := actorFrom(ec)
	if err != nil {
		return err
	}
	id, err := pathID(ec, "id")
	if err != nil {
		return err
	}
	var req request.UpdateUserRequest
	if err := bindAndValidate(ec, &req); err != nil {
		return err
	}

	user, err := c.managers.UserManager.Update(ec.Request().Context(), actor, id, req)
	if err != nil {
		return managerError(err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(response.NewUserResponse(user)))
}

// DeleteUser godoc
//
//	@Summary		Delete user
//	@Description	Removes the user together with their sessions and tasks.
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"User id"
//	@Success		200	{object}	response.UserResponse
//	@Failure		400
//	@Failure		403
//	@Failure		404
//	@Router			/api/v1/users/{id} [delete]
func (c *UserController) Delete(ec echo.Context) error {
	actor, err := actorFrom(ec)
	if err != nil {
		return err
	}
	id, err := pathID(ec, "id")
	if err != nil {
		return err
	}

	user, err := c.managers.UserManager.Delete(ec.Request().Context(), actor, id)
	if err != nil {
		return managerError(err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(response.NewUserResponse(user)))
}
