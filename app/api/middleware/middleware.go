package middleware

import (
	"github.com/labstack/echo/v4"

	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/pkg/jwt"
	"backend/gestion-platform/app/pkg/redis"
)

type Middleware struct {
	JwtAuthentication JwtAuthentication
	LoginRateLimit    LoginRateLimit
}

func NewMiddleware(res runtime.Resource, jwtManager jwt.Jwt) *Middleware {
	var limiter redis.RateLimiter
	if res.Redis != nil && res.Redis.GetUniversalClient() != nil {
		limiter = redis.NewRedisRateLimiter(res.Redis)
	}
	return &Middleware{
		JwtAuthentication: NewJwtAuthentication(res, jwtManager),
		LoginRateLimit:    NewLoginRateLimit(res, limiter),
	}
}

func (m *Middleware) RequireAuth() echo.MiddlewareFunc {
	return m.JwtAuthentication.RequireAuth()
}

func (m *Middleware) RateLimitLogin() echo.MiddlewareFunc {
	return m.LoginRateLimit.Middleware()
}
