package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"backend/gestion-platform/app/api/client/exception"
	"backend/gestion-platform/app/api/client/response"
	"backend/gestion-platform/app/internal/authz"
	"backend/gestion-platform/app/manager"
)

// managerError maps manager and policy errors to HTTP errors. Anything
// unrecognised becomes a 500 whose cause stays in the log.
func managerError(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, authz.ErrUnauthenticated):
		return exception.NewUnauthorizedError(err, int(exception.ErrorCodeMissingUserContext), "Authentication required")
	case errors.Is(err, authz.ErrForbidden):
		return exception.NewForbiddenError(err, int(exception.ErrorCodeForbidden), "You are not allowed to perform this action")
	case errors.Is(err, manager.ErrValidation):
		return withFields(exception.NewError(err, http.StatusBadRequest, int(exception.ErrorCodeValidationFailed), err.Error()), err)
	case errors.Is(err, manager.ErrConflict):
		return withFields(exception.NewError(err, http.StatusConflict, int(exception.ErrorCodeConflict), err.Error()), err)
	case errors.Is(err, manager.ErrNotFound):
		return exception.NewNotFoundError(err, int(exception.ErrorCodeEntityNotFound), err.Error())
	case errors.Is(err, manager.ErrInvalidCredentials):
		return exception.NewUnauthorizedError(err, int(exception.ErrorCodeInvalidCredentials), manager.ErrInvalidCredentials.Error())
	case errors.Is(err, manager.ErrInactiveAccount):
		return exception.NewUnauthorizedError(err, int(exception.ErrorCodeInactiveAccount), manager.ErrInactiveAccount.Error())
	case errors.Is(err, manager.ErrRefreshTokenExpired):
		return exception.NewUnauthorizedError(err, int(exception.ErrorCodeTokenExpired), err.Error())
	case errors.Is(err, manager.ErrInvalidRefreshToken), errors.Is(err, manager.ErrRefreshTokenRevoked):
		return exception.NewUnauthorizedError(err, int(exception.ErrorCodeInvalidToken), err.Error())
	default:
		return exception.NewInternalServerError(err, int(exception.ErrorCodeInternalServer), "Internal server error")
	}
}

func withFields(httpErr *echo.HTTPError, err error) *echo.HTTPError {
	var fe *manager.FieldsError
	if !errors.As(err, &fe) {
		return httpErr
	}
	model := httpErr.Message.(*exception.ErrorModel)
	for _, f := range fe.Fields {
		model.ErrorDetails = append(model.ErrorDetails, response.ErrorDetail{Field: f, Message: fe.Reason})
	}
	return httpErr
}

func bindError(err error) error {
	return exception.NewBadRequestError(err, int(exception.ErrorCodeFailedBindingData), "Invalid request format")
}
