package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spartan-truongvi/redis_rate/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"backend/gestion-platform/app/api/middleware"
	"backend/gestion-platform/app/internal/config"
	"backend/gestion-platform/app/internal/runtime"
)

// countingLimiter allows the first max calls per key.
type countingLimiter struct {
	max   int
	calls map[string]int
	err   error
}

func (l *countingLimiter) Allow(_ context.Context, key string, _ redis_rate.Limit) (*redis_rate.Result, error) {
	if l.err != nil {
		return nil, l.err
	}
	l.calls[key]++
	if l.calls[key] > l.max {
		return &redis_rate.Result{Allowed: 0, RetryAfter: 30 * time.Second}, nil
	}
	return &redis_rate.Result{Allowed: 1, Remaining: l.max - l.calls[key]}, nil
}

func (l *countingLimiter) Reset(_ context.Context, key string) error {
	delete(l.calls, key)
	return nil
}

func newRateLimitResource(perMinute int) runtime.Resource {
	return runtime.Resource{
		Config: config.ApplicationConfig{RateLimitConfig: config.RateLimitConfig{LoginPerMinute: perMinute}},
		Logger: zap.NewNop(),
	}
}

func login(e *echo.Echo, mw echo.MiddlewareFunc) error {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.1")
	c := e.NewContext(req, httptest.NewRecorder())
	return mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
}

func TestLoginRateLimit_BlocksAfterLimit(t *testing.T) {
	e := echo.New()
	limiter := &countingLimiter{max: 2, calls: map[string]int{}}
	mw := middleware.NewLoginRateLimit(newRateLimitResource(2), limiter).Middleware()

	require.NoError(t, login(e, mw))
	require.NoError(t, login(e, mw))

	err := login(e, mw)
	var httpErr *echo.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)
	assert.Equal(t, 3, limiter.calls["rate:login:10.0.0.1"])
}

func TestLoginRateLimit_Disabled(t *testing.T) {
	e := echo.New()
	limiter := &countingLimiter{max: 0, calls: map[string]int{}}
	rl := middleware.NewLoginRateLimit(newRateLimitResource(0), limiter)

	assert.False(t, rl.Enabled())
	assert.NoError(t, login(e, rl.Middleware()))
	assert.Empty(t, limiter.calls)
}

func TestLoginRateLimit_FailsOpen(t *testing.T) {
	e := echo.New()
	limiter := &countingLimiter{err: errors.New("redis down"), calls: map[string]int{}}

	err := login(e, middleware.NewLoginRateLimit(newRateLimitResource(5), limiter).Middleware())

	assert.NoError(t, err)
}
