package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"backend/gestion-platform/app/pkg/util/cookie"
)

func TestNewRefreshTokenCookie(t *testing.T) {
	t.Setenv("APP_ENV", "local")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)

	c := cookie.NewRefreshTokenCookie(req, "token", time.Hour)

	assert.Equal(t, cookie.RefreshTokenName, c.Name)
	assert.Equal(t, "token", c.Value)
	assert.Equal(t, "/api/v1/auth", c.Path)
	assert.True(t, c.HttpOnly)
	assert.False(t, c.Secure)
	assert.Equal(t, 3600, c.MaxAge)
}

func TestNewRefreshTokenCookie_SecureBehindTLSProxy(t *testing.T) {
	t.Setenv("APP_ENV", "local")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.Header.Set("X-Forwarded-Proto", "https")

	assert.True(t, cookie.NewRefreshTokenCookie(req, "token", time.Hour).Secure)
}

func TestNewRefreshTokenCookie_SecureInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)

	assert.True(t, cookie.NewRefreshTokenCookie(req, "token", time.Hour).Secure)
}

func TestExpireRefreshTokenCookie(t *testing.T) {
	t.Setenv("APP_ENV", "local")
	c := cookie.ExpireRefreshTokenCookie(httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil))

	assert.Equal(t, cookie.RefreshTokenName, c.Name)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
}
