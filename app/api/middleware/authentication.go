// Package middleware provides bearer-token authentication and request
// throttling for the HTTP API.
package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"backend/gestion-platform/app/database/constant/role"
	"backend/gestion-platform/app/internal/authz"
)

const (
	// Context keys
	contextUserID     = "user_id"
	contextUsername   = "username"
	contextEmail      = "email"
	contextRole       = "role"
	contextPole       = "pole"
	contextActor      = "actor"
	contextAuthMethod = "auth_method"

	authMethodJWT = "jwt"

	tokenParts     = 2
	authHeaderName = "Authorization"

	// Error messages
	errMsgAuthRequired        = "Authentication required"
	errMsgInvalidCredentials  = "Invalid credentials"
	errMsgHeaderMissing       = "Authorization header missing"
	errMsgInvalidHeaderFormat = "Invalid authorization header format"
	errMsgTooManyAttempts     = "Too many login attempts, try again later"
)

var ErrMissingActor = errors.New("no authenticated user in context")

// AuthenticationResult represents the result of an authentication attempt
type AuthenticationResult struct {
	Success  bool
	UserID   *int64
	Username *string
	Email    *string
	Role     *string
	Pole     *string
	Method   string
}

type Authentication interface {
	GetName() string
	CanHandle(ec echo.Context) bool
	// RequireAuth rejects the request with 401 unless it carries valid credentials
	RequireAuth() echo.MiddlewareFunc
	Authenticate(ec echo.Context) (*AuthenticationResult, error)
	SetUserContext(c echo.Context, result *AuthenticationResult)
}

// GetActor returns the caller placed in the context by RequireAuth.
func GetActor(c echo.Context) (authz.Actor, error) {
	actor, ok := c.Get(contextActor).(authz.Actor)
	if !ok || actor.IsZero() {
		return authz.Actor{}, ErrMissingActor
	}
	return actor, nil
}

func actorFromResult(result *AuthenticationResult) authz.Actor {
	var actor authz.Actor
	if result.UserID != nil {
		actor.ID = *result.UserID
	}
	if result.Role != nil {
		if r, err := role.Parse(*result.Role); err == nil {
			actor.Role = r
		}
	}
	return actor
}
