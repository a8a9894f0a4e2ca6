package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backend/gestion-platform/app/api/client/exception"
	"backend/gestion-platform/app/api/client/request"
	"backend/gestion-platform/app/api/client/response"
	"backend/gestion-platform/app/database/entity"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/manager"
)

// ValidationController approves or rejects pending accounts and submitted tasks.
type ValidationController struct {
	res      runtime.Resource
	managers *manager.Managers
}

func NewValidationController(managers *manager.Managers, res runtime.Resource) *ValidationController {
	return &ValidationController{
		res:      res,
		managers: managers,
	}
}

// ValidateUser godoc
//
//	@Summary		Approve or reject an account
//	@Description	approve activates the account. reject deactivates it and revokes its sessions.
//	@Tags			validation
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int		true	"User id"
//	@Param			action	path		string	true	"approve or reject"
//	@Success		200		{object}	response.UserResponse
//	@Failure		400
//	@Failure		403
//	@Failure		404
//	@Router			/api/v1/user-validation/{id}/{action} [put]
func (c *ValidationController) ValidateUser(ec echo.Context) error {
	actor, err := actorFrom(ec)
	if err != nil {
		return err
	}
	id, err := pathID(ec, "id")
	if err != nil {
		return err
	}
	action, err := validationAction(ec)
	if err != nil {
		return err
	}

	var user *entity.User
	ctx := ec.Request().Context()
	if action == request.ActionApprove {
		user, err = c.managers.AuthManager.Approve(ctx, actor, id)
	} else {
		user, err = c.managers.AuthManager.Reject(ctx, actor, id)
	}
	if err != nil {
		return managerError(err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(response.NewUserResponse(user)))
}

// ValidateTask godoc
//
//	@Summary		Approve or reject a task
//	@Description	approve moves the task to in_progress, reject to rejected.
//	@Tags			validation
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int		true	"Task id"
//	@Param			action	path		string	true	"approve or reject"
//	@Success		200		{object}	response.TaskResponse
//	@Failure		400
//	@Failure		403
//	@Failure		404
//	@Router			/api/v1/task-validation/{id}/{action} [put]
func (c *ValidationController) ValidateTask(ec echo.Context) error {
	actor, err := actorFrom(ec)
	if err != nil {
		return err
	}
	id, err := pathID(ec, "id")
	if err != nil {
		return err
	}
	action, err := validationAction(ec)
	if err != nil {
		return err
	}

	t, err := c.managers.TaskManager.Validate(ec.Request().Context(), actor, id, action)
	if err != nil {
		return managerError(err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(response.NewTaskResponse(t, langFrom(ec))))
}

func validationAction(ec echo.Context) (request.ValidationAction, error) {
	action := request.ValidationAction(ec.Param("action"))
	if !action.IsValid() {
		return "", exception.NewBadRequestError(
			exception.ErrorWithContext(exception.ErrInvalidParameter, "action", string(action)),
			int(exception.ErrorCodeInvalidParameter),
			"action must be approve or reject",
		)
	}
	return action, nil
}
