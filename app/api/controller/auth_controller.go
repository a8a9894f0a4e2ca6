package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"backend/gestion-platform/app/api/client/exception"
	"backend/gestion-platform/app/api/client/request"
	"backend/gestion-platform/app/api/client/response"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/manager"
	"backend/gestion-platform/app/pkg/util/cookie"
)

type AuthController struct {
	res      runtime.Resource
	managers *manager.Managers
}

func NewAuthController(managers *manager.Managers, res runtime.Resource) *AuthController {
	return &AuthController{
		res:      res,
		managers: managers,
	}
}

// Register godoc
//
//	@Summary		Register user
//	@Description	Create an inactive account that waits for approval
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.RegisterRequest	true	"Registration"
//	@Success		201		{object}	response.UserResponse
//	@Failure		400
//	@Failure		409
//	@Failure		500
//	@Router			/api/v1/auth/register [post]
func (c *AuthController) Register(ec echo.Context) error {
	var req request.RegisterRequest
	if err := bindAndValidate(ec, &req); err != nil {
		return err
	}

	user, err := c.managers.AuthManager.Register(ec.Request().Context(), req)
	if err != nil {
		return managerError(err)
	}
	return ec.JSON(http.StatusCreated, response.ToSuccessResponse(response.NewUserResponse(user)))
}

// Login godoc
//
//	@Summary		User login
//	@Description	Authenticate with an email or username and a password
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.LoginRequest	true	"Login credentials"
//	@Success		200		{object}	response.AuthResponse
//	@Failure		400
//	@Failure		401
//	@Failure		429
//	@Failure		500
//	@Router			/api/v1/auth/login [post]
func (c *AuthController) Login(ec echo.Context) error {
	var req request.LoginRequest
	if err := bindAndValidate(ec, &req); err != nil {
		return err
	}

	res, err := c.managers.AuthManager.Login(ec.Request().Context(), req)
	if err != nil {
		c.res.Logger.Info("Login failed", zap.String("login", req.LoginID()), zap.Error(err))
		return managerError(err)
	}

	c.setRefreshCookie(ec, res)
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(res))
}

// RefreshToken godoc
//
//	@Summary		Refresh access token
//	@Description	Exchange the refresh token cookie (or body) for a new token pair
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.RefreshTokenRequest	false	"Refresh token"
//	@Success		200		{object}	response.AuthResponse
//	@Failure		401
//	@Failure		500
//	@Router			/api/v1/auth/refresh [post]
func (c *AuthController) RefreshToken(ec echo.Context) error {
	token, err := refreshTokenFrom(ec)
	if err != nil {
		return err
	}

	res, err := c.managers.AuthManager.RefreshToken(ec.Request().Context(), request.RefreshTokenRequest{RefreshToken: token})
	if err != nil {
		return managerError(err)
	}

	c.setRefreshCookie(ec, res)
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(res))
}

// Logout godoc
//
//	@Summary		User logout
//	@Description	Revoke the refresh token and clear the cookie
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body	request.LogoutRequest	false	"Logout request"
//	@Success		200
//	@Failure		401
//	@Failure		500
//	@Router			/api/v1/auth/logout [post]
func (c *AuthController) Logout(ec echo.Context) error {
	token, err := refreshTokenFrom(ec)
	if err != nil {
		return err
	}

	if err := c.managers.AuthManager.Logout(ec.Request().Context(), request.LogoutRequest{RefreshToken: token}); err != nil {
		return managerError(err)
	}

	ec.SetCookie(cookie.ExpireRefreshTokenCookie(ec.Request()))
	return ec.JSON(http.StatusOK, response.ToSuccessResponse("Logged out successfully"))
}

// Me godoc
//
//	@Summary		Current user
//	@Description	Return the account behind the access token
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.UserResponse
//	@Failure		401
//	@Router			/api/v1/auth/me [get]
func (c *AuthController) Me(ec echo.Context) error {
	actor, err := actorFrom(ec)
	if err != nil {
		return err
	}

	user, err := c.managers.AuthManager.Me(ec.Request().Context(), actor.ID)
	if err != nil {
		return managerError(err)
	}
	return ec.JSON(http.StatusOK, response.ToSuccessResponse(response.NewUserResponse(user)))
}

func (c *AuthController) setRefreshCookie(ec echo.Context, res *response.AuthResponse) {
	if res.RefreshToken == "" {
		return
	}
	ec.SetCookie(cookie.NewRefreshTokenCookie(ec.Request(), res.RefreshToken, c.res.Config.JwtConfig.RefreshExpiration))
	res.RefreshToken = ""
}

// refreshTokenFrom prefers the cookie and falls back to a JSON body.
func refreshTokenFrom(ec echo.Context) (string, error) {
	if rt, err := ec.Cookie(cookie.RefreshTokenName); err == nil && rt.Value != "" {
		return rt.Value, nil
	}

	var body request.RefreshTokenRequest
	if ec.Request().ContentLength != 0 {
		if err := ec.Bind(&body); err != nil {
			return "", bindError(err)
		}
	}
	if body.RefreshToken == "" {
		return "", exception.NewUnauthorizedError(exception.ErrInvalidToken, int(exception.ErrorCodeInvalidToken), "Missing refresh token")
	}
	return body.RefreshToken, nil
}
