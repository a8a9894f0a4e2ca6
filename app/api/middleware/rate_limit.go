package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"backend/gestion-platform/app/api/client/exception"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/pkg/redis"
)

// LoginRateLimit throttles login attempts per client IP.
type LoginRateLimit struct {
	res       runtime.Resource
	limiter   redis.RateLimiter
	perMinute int
}

// NewLoginRateLimit returns a disabled limiter when limiter is nil or the
// configured rate is zero.
func NewLoginRateLimit(res runtime.Resource, limiter redis.RateLimiter) LoginRateLimit {
	return LoginRateLimit{
		res:       res,
		limiter:   limiter,
		perMinute: res.Config.RateLimitConfig.LoginPerMinute,
	}
}

func (l LoginRateLimit) Enabled() bool {
	return l.limiter != nil && l.perMinute > 0
}

func (l LoginRateLimit) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.Enabled() {
				return next(c)
			}

			ip := c.RealIP()
			result, err := l.limiter.Allow(c.Request().Context(), redis.LoginRateKey(ip), redis.LoginLimit(l.perMinute))
			if err != nil {
				// Fails open while Redis is unavailable.
				l.res.Logger.Warn("login rate limiter unavailable", zap.Error(err))
				return next(c)
			}
			if result.Allowed == 0 {
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(result.RetryAfter.Seconds())+1))
				return exception.NewTooManyRequestsError(nil, int(exception.ErrorCodeCodeRateLimitExceeded), errMsgTooManyAttempts)
			}
			return next(c)
		}
	}
}
