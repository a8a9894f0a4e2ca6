package cookie

import (
	"net/http"
	"strings"
	"time"

	ctxutil "backend/gestion-platform/app/pkg/util/context"
)

// RefreshTokenName is the cookie carrying the opaque refresh token.
const RefreshTokenName = "refresh_token"

// refreshTokenPath limits the cookie to the endpoints that read it.
const refreshTokenPath = "/api/v1/auth"

func isHTTPS(req *http.Request) bool {
	if req == nil {
		return false
	}
	if req.TLS != nil {
		return true
	}
	xfProto := req.Header.Get("X-Forwarded-Proto")
	xfProtocol := req.Header.Get("X-Forwarded-Protocol")
	return strings.HasPrefix(strings.ToLower(xfProto), "https") || strings.HasPrefix(strings.ToLower(xfProtocol), "https")
}

// secure reports whether the cookie must only travel over TLS.
// Production always requires it, whatever the proxy headers say.
func secure(req *http.Request) bool {
	return isHTTPS(req) || ctxutil.GetAppModeFromEnv() == ctxutil.AppModeProd
}

func NewRefreshTokenCookie(req *http.Request, token string, expiry time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     RefreshTokenName,
		Value:    token,
		Path:     refreshTokenPath,
		HttpOnly: true,
		Secure:   secure(req),
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(expiry),
		MaxAge:   int(expiry.Seconds()),
	}
}

func ExpireRefreshTokenCookie(req *http.Request) *http.Cookie {
	return &http.Cookie{
		Name:     RefreshTokenName,
		Value:    "",
		Path:     refreshTokenPath,
		HttpOnly: true,
		Secure:   secure(req),
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	}
}
