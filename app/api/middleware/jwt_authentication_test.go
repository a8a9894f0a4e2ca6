package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"backend/gestion-platform/app/api/middleware"
	"backend/gestion-platform/app/database/constant/role"
	"backend/gestion-platform/app/internal/authz"
	"backend/gestion-platform/app/internal/config"
	"backend/gestion-platform/app/internal/runtime"
	jwtPkg "backend/gestion-platform/app/pkg/jwt"
)

type JwtAuthenticationSuite struct {
	suite.Suite
	jwtAuth     middleware.JwtAuthentication
	echo        *echo.Echo
	res         runtime.Resource
	jwtInstance jwtPkg.Jwt
}

func TestJwtAuthenticationSuite(t *testing.T) {
	suite.Run(t, new(JwtAuthenticationSuite))
}

func (s *JwtAuthenticationSuite) SetupSuite() {
	s.res = runtime.Resource{
		Config: config.ApplicationConfig{
			JwtConfig: config.JwtConfig{
				SecretKey:         "test-secret-key-for-jwt-testing-12345",
				AccessExpiration:  time.Hour,
				RefreshExpiration: 24 * time.Hour,
			},
		},
		Logger: zap.NewNop(),
	}
	s.jwtInstance = jwtPkg.NewJwt(s.res.Config.JwtConfig)
}

func (s *JwtAuthenticationSuite) SetupTest() {
	s.echo = echo.New()
	s.jwtAuth = middleware.NewJwtAuthentication(s.res, s.jwtInstance)
}

func (s *JwtAuthenticationSuite) accessToken(id int64, r string) string {
	username, email := "alice", "alice@example.com"
	token, err := s.jwtInstance.GenerateAccessToken(&id, &username, &email, &r, nil)
	s.Require().NoError(err)
	return token.Token
}

func (s *JwtAuthenticationSuite) serve(authHeader string) (authz.Actor, error) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	c := s.echo.NewContext(req, httptest.NewRecorder())

	var actor authz.Actor
	handler := s.jwtAuth.RequireAuth()(func(c echo.Context) error {
		var err error
		actor, err = middleware.GetActor(c)
		return err
	})
	return actor, handler(c)
}

func (s *JwtAuthenticationSuite) TestRequireAuth_ValidToken() {
	actor, err := s.serve("Bearer " + s.accessToken(42, "responsable"))

	s.Require().NoError(err)
	s.Equal(authz.Actor{ID: 42, Role: role.Responsable}, actor)
}

func (s *JwtAuthenticationSuite) TestRequireAuth_LowercaseScheme() {
	_, err := s.serve("bearer " + s.accessToken(42, "admin"))

	s.NoError(err)
}

func (s *JwtAuthenticationSuite) TestRequireAuth_Rejected() {
	id, username, email, r := int64(42), "alice", "alice@example.com", "admin"
	refresh, err := s.jwtInstance.GenerateRefreshToken(&id, &username, &email, &r, nil)
	s.Require().NoError(err)

	other := jwtPkg.NewJwt(config.JwtConfig{SecretKey: "another-secret", AccessExpiration: time.Hour})
	forged, err := other.GenerateAccessToken(&id, &username, &email, &r, nil)
	s.Require().NoError(err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header"},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "empty token", header: "Bearer  "},
		{name: "garbage", header: "Bearer not.a.jwt"},
		{name: "refresh token", header: "Bearer " + refresh.Token},
		{name: "wrong signature", header: "Bearer " + forged.Token},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.serve(tt.header)

			var httpErr *echo.HTTPError
			s.Require().True(errors.As(err, &httpErr))
			s.Equal(http.StatusUnauthorized, httpErr.Code)
		})
	}
}

func (s *JwtAuthenticationSuite) TestGetActor_MissingContext() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := middleware.GetActor(c)

	s.ErrorIs(err, middleware.ErrMissingActor)
}
