package controller

import (
	"github.com/labstack/echo/v4"

	"backend/gestion-platform/app/api/client/exception"
	"backend/gestion-platform/app/api/client/request"
	"backend/gestion-platform/app/api/client/response"
	"backend/gestion-platform/app/api/middleware"
	"backend/gestion-platform/app/internal/authz"
	"backend/gestion-platform/app/pkg/i18n"
	"backend/gestion-platform/app/pkg/util/numeric"
)

func actorFrom(ec echo.Context) (authz.Actor, error) {
	actor, err := middleware.GetActor(ec)
	if err != nil {
		return authz.Actor{}, exception.NewUnauthorizedError(err, int(exception.ErrorCodeMissingUserContext), "Authentication required")
	}
	return actor, nil
}

// pathID reads a numeric path parameter. Non-numeric input is a 400, never a silent miss.
func pathID(ec echo.Context, name string) (int64, error) {
	id, err := numeric.ParseID(ec.Param(name))
	if err != nil {
		return 0, exception.NewBadRequestError(
			exception.ErrorWithContext(err, "param", name),
			int(exception.ErrorCodeInvalidParameter),
			"invalid "+name,
		)
	}
	return id, nil
}

func bindAndValidate(ec echo.Context, req any) error {
	if err := ec.Bind(req); err != nil {
		return bindError(err)
	}
	return ec.Validate(req)
}

func langFrom(ec echo.Context) i18n.Lang {
	return i18n.Negotiate(ec.Request().Header.Get("Accept-Language"))
}

// listResponse wraps data in a page envelope only when the client asked for a page.
func listResponse[T any](data []T, total int, p request.PaginationRequest) any {
	if !p.Paged() {
		if data == nil {
			data = []T{}
		}
		return response.ToSuccessResponse(data)
	}
	return response.ToPaginationResponse(data, int64(total), p.Page, p.PageSize())
}
