package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"backend/gestion-platform/app/api/client/exception"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/pkg/jwt"
)

type JwtAuthentication struct {
	jwt jwt.Jwt
	res runtime.Resource
}

func NewJwtAuthentication(res runtime.Resource, jwtManager jwt.Jwt) JwtAuthentication {
	return JwtAuthentication{
		jwt: jwtManager,
		res: res,
	}
}

func (j JwtAuthentication) GetName() string {
	return authMethodJWT
}

func (j JwtAuthentication) CanHandle(ec echo.Context) bool {
	authHeader := ec.Request().Header.Get(authHeaderName)
	if authHeader == "" {
		return false
	}

	parts := strings.SplitN(authHeader, " ", tokenParts)
	if len(parts) != tokenParts {
		return false
	}

	return strings.EqualFold(parts[0], jwt.TokenTypeBearer)
}

func (j JwtAuthentication) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !j.CanHandle(c) {
				return j.createErrorResponse(errMsgAuthRequired, nil)
			}

			result, err := j.Authenticate(c)
			if err != nil {
				j.res.Logger.Debug("JWT Authentication failed",
					zap.String("handler", j.GetName()),
					zap.Error(err))
				return j.createErrorResponse(errMsgInvalidCredentials, err)
			}

			if !result.Success {
				return j.createErrorResponse(errMsgInvalidCredentials, nil)
			}

			j.SetUserContext(c, result)
			return next(c)
		}
	}
}

// Authenticate accepts access tokens only. Refresh tokens carry a session
// secret and are rejected here.
func (j JwtAuthentication) Authenticate(ec echo.Context) (*AuthenticationResult, error) {
	token, err := j.extractToken(ec)
	if err != nil {
		return nil, err
	}

	claims, err := j.jwt.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	if claims.RefreshTokenBase64 != nil {
		return nil, jwt.ErrInvalidToken
	}
	if claims.UserID == nil || *claims.UserID == 0 {
		return nil, jwt.ErrInvalidToken
	}

	return &AuthenticationResult{
		Success:  true,
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     claims.Role,
		Pole:     claims.Pole,
		Method:   authMethodJWT,
	}, nil
}

func (j JwtAuthentication) SetUserContext(c echo.Context, result *AuthenticationResult) {
	if result.UserID != nil {
		c.Set(contextUserID, *result.UserID)
	}
	if result.Username != nil {
		c.Set(contextUsername, *result.Username)
	}
	if result.Email != nil {
		c.Set(contextEmail, *result.Email)
	}
	if result.Role != nil {
		c.Set(contextRole, *result.Role)
	}
	if result.Pole != nil {
		c.Set(contextPole, *result.Pole)
	}
	c.Set(contextActor, actorFromResult(result))
	c.Set(contextAuthMethod, result.Method)
}

func (j JwtAuthentication) createErrorResponse(message string, err error) *echo.HTTPError {
	code := exception.ErrorCodeUnauthorized
	if errors.Is(err, jwt.ErrInvalidToken) {
		code = exception.ErrorCodeInvalidToken
	}
	return exception.NewError(err, http.StatusUnauthorized, int(code), message)
}

func (j JwtAuthentication) extractToken(ec echo.Context) (string, error) {
	authHeader := ec.Request().Header.Get(authHeaderName)
	if authHeader == "" {
		return "", errors.New(errMsgHeaderMissing)
	}

	parts := strings.SplitN(authHeader, " ", tokenParts)
	if len(parts) != tokenParts || !strings.EqualFold(parts[0], jwt.TokenTypeBearer) {
		return "", errors.New(errMsgInvalidHeaderFormat)
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New(errMsgInvalidHeaderFormat)
	}

	return token, nil
}

var _ Authentication = JwtAuthentication{}
