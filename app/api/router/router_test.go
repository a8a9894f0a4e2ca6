package router_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"backend/gestion-platform/app/api/client/exception"
	"backend/gestion-platform/app/api/client/request"
	"backend/gestion-platform/app/api/client/response"
	"backend/gestion-platform/app/api/controller"
	"backend/gestion-platform/app/api/middleware"
	"backend/gestion-platform/app/api/router"
	"backend/gestion-platform/app/database/constant/role"
	"backend/gestion-platform/app/database/constant/task"
	"backend/gestion-platform/app/database/entity"
	"backend/gestion-platform/app/database/repository"
	"backend/gestion-platform/app/internal/authz"
	"backend/gestion-platform/app/internal/config"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/internal/validator"
	"backend/gestion-platform/app/manager"
	"backend/gestion-platform/app/pkg/jwt"
	mocks "backend/gestion-platform/app/test/mocks/managers"
	httputil "backend/gestion-platform/app/test/util"
)

type RouterSuite struct {
	suite.Suite
	e     *echo.Echo
	jwt   jwt.Jwt
	auth  *mocks.MockAuthManager
	users *mocks.MockUserManager
	tasks *mocks.MockTaskManager
	poles *mocks.MockPoleManager
	stats *mocks.MockStatsManager
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	res := runtime.Resource{
		Config: config.ApplicationConfig{
			JwtConfig: config.JwtConfig{
				Issuer:            "gestion-platform",
				SecretKey:         "router-suite-secret",
				AccessExpiration:  time.Hour,
				RefreshExpiration: 24 * time.Hour,
			},
			RouterConfig: config.RouterConfig{AllowedOrigins: "http://localhost:5173,https://*.example.org"},
		},
		Logger: zap.NewNop(),
	}
	s.jwt = jwt.NewJwt(res.Config.JwtConfig)
	s.auth = mocks.NewMockAuthManager(s.T())
	s.users = mocks.NewMockUserManager(s.T())
	s.tasks = mocks.NewMockTaskManager(s.T())
	s.poles = mocks.NewMockPoleManager(s.T())
	s.stats = mocks.NewMockStatsManager(s.T())

	managers := &manager.Managers{
		AuthManager:  s.auth,
		UserManager:  s.users,
		TaskManager:  s.tasks,
		PoleManager:  s.poles,
		StatsManager: s.stats,
		Jwt:          s.jwt,
		Gate:         authz.NewDefaultGate(),
	}
	s.e = router.NewRouter(
		res,
		validator.NewValidators(res),
		middleware.NewMiddleware(res, s.jwt),
		controller.NewControllers(managers, res),
	).Echo
}

func (s *RouterSuite) token(id int64, r role.Role) *string {
	username, email, rs := fmt.Sprintf("user%d", id), fmt.Sprintf("user%d@example.org", id), string(r)
	t, err := s.jwt.GenerateAccessToken(&id, &username, &email, &rs, nil)
	s.Require().NoError(err)
	return &t.Token
}

func actorMatch(id int64) any {
	return mock.MatchedBy(func(a authz.Actor) bool { return a.ID == id })
}

func (s *RouterSuite) TestPreflightIsAnsweredBeforeRouting() {
	for _, target := range []string{"/api/v1/tasks/12", "/api/v1/auth/login", "/api/v1/user-validation/3/approve", "/health"} {
		s.Run(target, func() {
			req := httptest.NewRequest(http.MethodOptions, target, nil)
			req.Header.Set(echo.HeaderOrigin, "https://app.example.org")
			req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPut)

			rec := httputil.Recorder(s.e, req)

			s.Equal(http.StatusOK, rec.Code)
			s.Empty(rec.Body.String())
			s.Equal("https://app.example.org", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
			s.Equal("true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
		})
	}
}

func (s *RouterSuite) TestPreflightFromUnknownOriginGetsNoAllowHeader() {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/tasks", nil)
	req.Header.Set(echo.HeaderOrigin, "https://evil.test")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)

	rec := httputil.Recorder(s.e, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func (s *RouterSuite) TestCORSHeadersOnSimpleRequest() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:5173")

	rec := httputil.Recorder(s.e, req)

	s.Equal("http://localhost:5173", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func (s *RouterSuite) TestUnknownRouteUsesEnvelope() {
	res, code, err := httputil.RequestHTTP[response.GeneralResponse[any]](s.e, http.MethodGet, "/nope", nil, nil)
	s.Require().NoError(err)
	s.Equal(http.StatusNotFound, code)
	s.False(res.Success)
	s.NotEmpty(res.Error)
}

func (s *RouterSuite) TestProtectedRouteRequiresToken() {
	res, code, err := httputil.RequestHTTP[response.GeneralResponse[any]](s.e, http.MethodGet, "/api/v1/tasks", nil, nil)
	s.Require().NoError(err)
	s.Equal(http.StatusUnauthorized, code)
	s.False(res.Success)
}

func (s *RouterSuite) TestLogin_SetsRefreshCookieAndHidesToken() {
	s.auth.EXPECT().Login(mock.Anything, request.LoginRequest{Identifier: "alice", Password: "secret1"}).
		Return(&response.AuthResponse{
			User:         response.UserResponse{ID: 3, Username: "alice"},
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresIn:    3600,
			TokenType:    jwt.TokenTypeBearer,
		}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"identifier":"alice","password":"secret1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httputil.Recorder(s.e, req)

	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), `"refresh_token"`)
	cookies := rec.Result().Cookies()
	s.Require().Len(cookies, 1)
	s.Equal("refresh_token", cookies[0].Name)
	s.Equal("refresh", cookies[0].Value)
	s.True(cookies[0].HttpOnly)
}

func (s *RouterSuite) TestLogin_InvalidCredentials() {
	s.auth.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, manager.ErrInvalidCredentials).Once()

	res, code, err := httputil.RequestHTTP[response.GeneralResponse[any]](s.e, http.MethodPost, "/api/v1/auth/login", nil,
		map[string]string{"email": "a@example.org", "password": "wrong"})
	s.Require().NoError(err)
	s.Equal(http.StatusUnauthorized, code)
	s.Equal("invalid_credentials", res.Error)
	s.Equal(int(exception.ErrorCodeInvalidCredentials), res.Code)
}

func (s *RouterSuite) TestLogin_InactiveAccount() {
	s.auth.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, manager.ErrInactiveAccount).Once()

	res, code, err := httputil.RequestHTTP[response.GeneralResponse[any]](s.e, http.MethodPost, "/api/v1/auth/login", nil,
		map[string]string{"email": "a@example.org", "password": "right"})
	s.Require().NoError(err)
	s.Equal(http.StatusUnauthorized, code)
	s.Equal("inactive_account", res.Error)
}

func (s *RouterSuite) TestLogin_MissingPasswordIsValidationError() {
	res, code, err := httputil.RequestHTTP[response.GeneralResponse[any]](s.e, http.MethodPost, "/api/v1/auth/login", nil,
		map[string]string{"identifier": "alice"})
	s.Require().NoError(err)
	s.Equal(http.StatusBadRequest, code)
	s.Equal(int(exception.ErrorCodeValidationFailed), res.Code)
	s.Require().NotEmpty(res.ErrorDetails)
	s.Equal("password", res.ErrorDetails[0].Field)
}

func (s *RouterSuite) TestRegister_Conflict() {
	s.auth.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, manager.ConflictingFields("email")).Once()

	res, code, err := httputil.RequestHTTP[response.GeneralResponse[any]](s.e, http.MethodPost, "/api/v1/auth/register", nil,
		request.RegisterRequest{Username: "bob", Email: "bob@example.org", Password: "secret1"})
	s.Require().NoError(err)
	s.Equal(http.StatusConflict, code)
	s.Require().Len(res.ErrorDetails, 1)
	s.Equal("email", res.ErrorDetails[0].Field)
}

func (s *RouterSuite) TestRegister_Created() {
	s.auth.EXPECT().Register(mock.Anything, mock.Anything).
		Return(&entity.User{ID: 9, Username: "bob", Email: "bob@example.org", Role: role.Utilisateur}, nil).Once()

	res, code, err := httputil.RequestHTTP[response.GeneralResponse[response.UserResponse]](s.e, http.MethodPost, "/api/v1/auth/register", nil,
		request.RegisterRequest{Username: "bob", Email: "bob@example.org", Password: "secret1"})
	s.Require().NoError(err)
	s.Equal(http.StatusCreated, code)
	s.Equal(int64(9), res.Data.ID)
	s.False(res.Data.IsActive)
}

func (s *RouterSuite) TestRefresh_WithoutTokenIsUnauthorized() {
	_, code, err := httputil.RequestHTTP[response.GeneralResponse[any]](s.e, http.MethodPost, "/api/v1/auth/refresh", nil, nil)
	s.Require().NoError(err)
	s.Equal(http.StatusUnauthorized, code)
}

func (s *RouterSuite) TestRefresh_ReadsCookie() {
	s.auth.EXPECT().RefreshToken(mock.Anything, request.RefreshTokenRequest{RefreshToken: "from-cookie"}).
		Return(&response.AuthResponse{AccessToken: "new", RefreshToken: "rotated"}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "from-cookie"})
	rec := httputil.Recorder(s.e, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Require().Len(rec.Result().Cookies(), 1)
	s.Equal("rotated", rec.Result().Cookies()[0].Value)
}

func (s *RouterSuite) TestRefresh_RevokedToken() {
	s.auth.EXPECT().RefreshToken(mock.Anything, request.RefreshTokenRequest{RefreshToken: "old"}).
		Return(nil, manager.ErrRefreshTokenRevoked).Once()

	res, code, err := httputil.RequestHTTP[response.GeneralResponse[any]](s.e, http.MethodPost, "/api/v1/auth/refresh", nil,
		request.RefreshTokenRequest{RefreshToken: "old"})
	s.Require().NoError(err)
	s.Equal(http.StatusUnauthorized, code)
	s.Equal(int(exception.ErrorCodeInvalidToken), res.Code)
}

func (s *RouterSuite) TestLogout_ExpiresCookie() {
	s.auth.EXPECT().Logout(mock.Anything, request.LogoutRequest{RefreshToken: "rt"}).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "rt"})
	rec := httputil.Recorder(s.e, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Require().Len(rec.Result().Cookies(), 1)
	s.Equal(-1, rec.Result().Cookies()[0].MaxAge)
}

func (s *RouterSuite) TestMe() {
	s.auth.EXPECT().Me(mock.Anything, int64(3)).Return(&entity.User{ID: 3, Username: "alice", IsActive: true}, nil).Once()

	res, code, err := httputil.RequestHTTP[response.GeneralResponse[response.UserResponse]](s.e, http.MethodGet, "/api/v1/auth/me", s.token(3, role.Utilisateur), nil)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, code)
	s.Equal("alice", res.Data.Username)
}

func (s *RouterSuite) TestListUsers_UnpagedReturnsPlainArray() {
	s.users.EXPECT().List(mock.Anything, actorMatch(1), mock.MatchedBy(func(r request.ListUsersRequest) bool {
		return r.Role == "responsable" && !r.Paged()
	})).Return([]entity.User{{ID: 2, Username: "rania"}}, 1, nil).Once()

	res, code, err := httputil.RequestHTTP[response.GeneralResponse[[]response.UserResponse]](s.e, http.MethodGet, "/api/v1/users?role=responsable", s.token(1, role.Admin), nil)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, code)
	s.Nil(res.Paging)
	s.Require().Len(res.Data, 1)
	s.Equal("rania", res.Data[0].Username)
}

func (s *RouterSuite) TestListUsers_Paged() {
	s.users.EXPECT().List(mock.Anything, actorMatch(1), mock.MatchedBy(func(r request.ListUsersRequest) bool {
		return r.Page == 2 && r.Size == 1
	})).Return([]entity.User{{ID: 5}}, 3, nil).Once()

	res, code, err := httputil.RequestHTTP[response.PaginationResponse[response.UserResponse]](s.e, http.MethodGet, "/api/v1/users?page=2&size=1", s.token(1, role.Admin), nil)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, code)
	s.Equal(int64(3), res.Paging.Total)
	s.Equal(3, res.Paging.NumberOfPages)
}

func (s *RouterSuite) TestListUsers_InvalidRoleFilter() {
	_, code, err := httputil.RequestHTTP[response.GeneralResponse[any]](s.e, http.MethodGet, "/api/v1/users?role=boss", s.token(1, role.Admin), nil)
	s.Require().NoError(err)
	s.Equal(http.StatusBadRequest, code)
}

func (s *RouterSuite) TestGetUser_NonNumericID() {
	res, code, err := httputil.RequestHTTP[response.GeneralResponse[any]](s.e, http.MethodGet, "/api/v1/users/abc", s.token(1, role.Admin), nil)
	s.Require().NoError(err)
	s.Equal(http.StatusBadRequest, code)
	s.Equal(int(exception.ErrorCodeInvalidParameter), res.Code)
}

func (s *RouterSuite) TestGetUser_NotFound() {
	s.users.EXPECT().Get(mock.Anything, actorMatch(1), int64(42)).Return(nil, fmt.Errorf("user %w", manager.ErrNotFound)).Once()

	_, code, err := httputil.RequestHTTP[response.GeneralResponse[any]](s.e, http.MethodGet, "/api/v1/users/42", s.token(1, role.Admin), nil)
	s.Require().NoError(err)
	s.Equal(http.StatusNotFound, code)
}

func (s *RouterSuite) TestDeleteUser_Forbidden() {
	s.users.EXPECT().Delete(mock.Anything, actorMatch(3), int64(4)).Return(nil, authz.ErrForbidden).Once()

	_, code, err := httputil.RequestHTTP[response.GeneralResponse[any]](s.e, http.MethodDelete, "/api/v1/users/4", s.token(3, role.Utilisateur), nil)
	s.Require().NoError(err)
	s.Equal(http.StatusForbidden, code)
}

func (s *RouterSuite) TestUpdateUser_InternalErrorHidesCause() {
	s.users.EXPECT().Update(mock.Anything, actorMatch(1), int64(2), mock.Anything).
		Return(nil, fmt.Errorf("user store: %w", context.DeadlineExceeded)).Once()

	res, code, err := httputil.RequestHTTP[response.GeneralResponse[any]](s.e, http.MethodPut, "/api/v1/users/2", s.token(1, role.Admin),
		map[string]any{"phone": nil})
	s.Require().NoError(err)
	s.Equal(http.StatusInternalServerError, code)
	s.Equal("Internal server error", res.Message)
	s.NotContains(res.Error, "deadline")
}

func (s *RouterSuite) TestCreateTask_LabelsFollowAcceptLanguage() {
	s.tasks.EXPECT().Create(mock.Anything, actorMatch(3), mock.MatchedBy(func(r request.CreateTaskRequest) bool {
		return r.Title == "Affiche" && r.Assignee != nil && r.Assignee.Int64() == 7
	})).Return(&entity.Task{ID: 11, Title: "Affiche", Status: task.Pending, Priority: task.PriorityUrgent, Pole: "Communication", CreatedBy: 3, IsActive: true}, nil).Once()

	res, code, err := httputil.RequestHTTP[response.GeneralResponse[response.TaskResponse]](s.e, http.MethodPost, "/api/v1/tasks", s.token(3, role.Utilisateur),
		map[string]any{"title": "Affiche", "status": "pending", "priority": "Urgent", "pole": "Communication", "assignee": "7"},
		http.Header{"Accept-Language": []string{"ar"}})
	s.Require().NoError(err)
	s.Equal(http.StatusCreated, code)
	s.Equal(task.Pending, res.Data.Status)
	s.Equal(task.Pending.Label("ar"), res.Data.StatusLabel)
}

func (s *RouterSuite) TestCreateTask_UnknownStatus() {
	_, code, err := httputil.RequestHTTP[response.GeneralResponse[any]](s.e, http.MethodPost, "/api/v1/tasks", s.token(3, role.Utilisateur),
		map[string]any{"title": "T", "status": "done", "priority": "Normal", "pole": "Koutoub"})
	s.Require().NoError(err)
	s.Equal(http.StatusBadRequest, code)
}

func (s *RouterSuite) TestDeleteTask_ReturnsSoftDeletedRow() {
	s.tasks.EXPECT().Delete(mock.Anything, actorMatch(3), int64(11)).
		Return(&entity.Task{ID: 11, Status: task.Pending, Priority: task.PriorityNormal, IsActive: false}, nil).Once()

	res, code, err := httputil.RequestHTTP[response.GeneralResponse[response.TaskResponse]](s.e, http.MethodDelete, "/api/v1/tasks/11", s.token(3, role.Utilisateur), nil)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, code)
	s.False(res.Data.IsActive)
}

func (s *RouterSuite) TestCreatePole_MissingName() {
	res, code, err := httputil.RequestHTTP[response.GeneralResponse[any]](s.e, http.MethodPost, "/api/v1/poles", s.token(1, role.Admin),
		map[string]any{"description": "x"})
	s.Require().NoError(err)
	s.Equal(http.StatusBadRequest, code)
	s.Require().NotEmpty(res.ErrorDetails)
	s.Equal("name", res.ErrorDetails[0].Field)
}

func (s *RouterSuite) TestListPoles() {
	s.poles.EXPECT().List(mock.Anything, actorMatch(3), mock.Anything).
		Return([]entity.Pole{{ID: 1, Name: "Koutoub", Slug: "koutoub", IsActive: true}}, 1, nil).Once()

	res, code, err := httputil.RequestHTTP[response.GeneralResponse[[]response.PoleResponse]](s.e, http.MethodGet, "/api/v1/poles", s.token(3, role.Utilisateur), nil)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, code)
	s.Require().Len(res.Data, 1)
	s.Equal("koutoub", res.Data[0].Slug)
}

func (s *RouterSuite) TestUserValidation() {
	s.auth.EXPECT().Approve(mock.Anything, actorMatch(1), int64(5)).Return(&entity.User{ID: 5, IsActive: true}, nil).Once()
	s.auth.EXPECT().Reject(mock.Anything, actorMatch(1), int64(6)).Return(&entity.User{ID: 6, IsActive: false}, nil).Once()

	approved, code, err := httputil.RequestHTTP[response.GeneralResponse[response.UserResponse]](s.e, http.MethodPut, "/api/v1/user-validation/5/approve", s.token(1, role.Admin), nil)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, code)
	s.True(approved.Data.IsActive)

	rejected, code, err := httputil.RequestHTTP[response.GeneralResponse[response.UserResponse]](s.e, http.MethodPut, "/api/v1/user-validation/6/reject", s.token(1, role.Admin), nil)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, code)
	s.False(rejected.Data.IsActive)
}

func (s *RouterSuite) TestUserValidation_UnknownAction() {
	_, code, err := httputil.RequestHTTP[response.GeneralResponse[any]](s.e, http.MethodPut, "/api/v1/user-validation/5/promote", s.token(1, role.Admin), nil)
	s.Require().NoError(err)
	s.Equal(http.StatusBadRequest, code)
}

func (s *RouterSuite) TestTaskValidation() {
	s.tasks.EXPECT().Validate(mock.Anything, actorMatch(2), int64(11), request.ActionReject).
		Return(&entity.Task{ID: 11, Status: task.Rejected, Priority: task.PriorityNormal, IsActive: true}, nil).Once()

	res, code, err := httputil.RequestHTTP[response.GeneralResponse[response.TaskResponse]](s.e, http.MethodPut, "/api/v1/task-validation/11/reject", s.token(2, role.Responsable), nil)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, code)
	s.Equal(task.Rejected, res.Data.Status)
}

func (s *RouterSuite) TestTaskStats() {
	s.stats.EXPECT().TaskStats(mock.Anything, actorMatch(2)).Return(&manager.TaskStats{
		Total:    3,
		ByStatus: []repository.StatusCount{{Status: task.InProgress, Count: 2}, {Status: task.Pending, Count: 1}},
		ByPole:   []repository.PoleCount{{Pole: "Koutoub", Count: 3}},
	}, nil).Once()

	res, code, err := httputil.RequestHTTP[response.GeneralResponse[response.TaskStatsResponse]](s.e, http.MethodGet, "/api/v1/stats/tasks", s.token(2, role.Responsable), nil,
		http.Header{"Accept-Language": []string{"fr-FR,fr;q=0.9"}})
	s.Require().NoError(err)
	s.Equal(http.StatusOK, code)
	s.Equal(3, res.Data.Total)
	s.Require().Len(res.Data.ByStatus, 2)
	s.Equal("in_progress", res.Data.ByStatus[0].Status)
	s.Equal(task.InProgress.Label("fr"), res.Data.ByStatus[0].Label)
}

func (s *RouterSuite) TestHealth() {
	res, code, err := httputil.RequestHTTP[response.GeneralResponse[response.HealthResponse]](s.e, http.MethodGet, "/health", nil, nil)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, code)
	s.Equal("up", res.Data.Status)
}
