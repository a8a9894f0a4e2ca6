//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"backend/gestion-platform/app/api/client/response"
	"backend/gestion-platform/app/api/controller"
	"backend/gestion-platform/app/api/middleware"
	"backend/gestion-platform/app/api/router"
	"backend/gestion-platform/app/database/constant/role"
	"backend/gestion-platform/app/database/entity"
	"backend/gestion-platform/app/database/repository"
	"backend/gestion-platform/app/internal/config"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/internal/validator"
	"backend/gestion-platform/app/manager"
	"backend/gestion-platform/app/pkg/db"
	"backend/gestion-platform/app/pkg/logging"
	"backend/gestion-platform/app/pkg/password"
	"backend/gestion-platform/app/pkg/redis"
	ctxutil "backend/gestion-platform/app/pkg/util/context"
	httpClientUtil "backend/gestion-platform/app/pkg/util/httpclient"
	httputil "backend/gestion-platform/app/test/util"
)

const migrationsSource = "file://../../../migrations"

// RouterSuite runs the full stack against the postgres and redis from config-test.yaml.
type RouterSuite struct {
	suite.Suite
	resource     runtime.Resource
	r            *require.Assertions
	a            *assert.Assertions
	e            *echo.Echo
	ctx          context.Context
	repositories *repository.Repositories
	managers     *manager.Managers
	hasher       password.Hasher
	testSetupAt  time.Time
}

func (s *RouterSuite) SetupSuite() {
	s.r = s.Suite.Require()
	s.a = s.Suite.Assert()
	env := ctxutil.AppModeTest
	s.ctx = ctxutil.SetAppMode(context.Background(), env)

	logger, err := logging.NewLogConfig("[gestion-platform]", env).NewLogging()
	s.r.NoError(err)
	zap.ReplaceGlobals(logger)

	cfg, err := config.ReadApplicationConfig(env, logger)
	s.r.NoError(err)
	s.r.NoError(db.Migrate(cfg.DatabaseConfig.PrimaryConnectionString(), migrationsSource, logger))

	database, err := db.NewDB(cfg, logger)
	s.r.NoError(err)

	rds, err := redis.NewUniversalRedisClient(cfg.RedisConfig, logger)
	s.r.NoError(err)

	s.resource = runtime.Resource{
		Config:     cfg,
		DB:         database,
		Redis:      rds,
		Logger:     logger,
		HttpClient: httpClientUtil.NewRestyClient(5*time.Second, logger),
	}
	s.hasher = password.NewMigratingHasher(cfg.PasswordConfig.Cost, true)

	s.repositories = repository.NewRepositories(s.resource)
	s.managers = manager.NewManagers(s.resource, s.repositories)
	s.e = router.NewRouter(
		s.resource,
		validator.NewValidators(s.resource),
		middleware.NewMiddleware(s.resource, s.managers.Jwt),
		controller.NewControllers(s.managers, s.resource),
	).Echo
}

func (s *RouterSuite) TearDownSuite() {
	if s.resource.Redis != nil {
		if err := s.resource.Redis.Reset(s.ctx); err != nil {
			s.resource.Logger.Error("Failed to flush redis", zap.Error(err))
		}
		_ = s.resource.Redis.Close()
	}
	if s.resource.DB != nil {
		if err := s.resource.DB.Close(); err != nil {
			s.resource.Logger.Error("Failed to close database connection in test teardown", zap.Error(err))
		}
	}
}

func (s *RouterSuite) SetupTest() {
	s.r.NoError(s.resource.DB.PrimaryDb.QueryRowContext(s.ctx, "SELECT NOW()").Scan(&s.testSetupAt))
	s.r.NoError(s.resource.Redis.Delete(s.ctx, manager.TaskStatsCacheKey))
}

// TearDownTest removes the rows created by the test, children first.
func (s *RouterSuite) TearDownTest() {
	for _, table := range []string{"sessions", "tasks", "poles", "users"} {
		_, err := s.resource.DB.PrimaryConn().NewDelete().
			TableExpr(table).
			Where("created_at >= ?", s.testSetupAt).
			Exec(s.ctx)
		if err != nil {
			s.resource.Logger.Error("failed to clean table", zap.String("table", table), zap.Error(err))
		}
	}
}

func (s *RouterSuite) hash(plain string) string {
	h, err := s.hasher.HashPassword(plain)
	s.r.NoError(err)
	return h
}

func (s *RouterSuite) createUser(username string, r role.Role, active bool, hash string) *entity.User {
	if hash == "" {
		var err error
		hash, err = s.hasher.HashPassword("secret123")
		s.r.NoError(err)
	}
	u, err := s.repositories.UserRepository.Insert(s.ctx, &entity.User{
		Username: username,
		Email:    username + "@example.org",
		Password: hash,
		Role:     r,
		IsActive: active,
	})
	s.r.NoError(err)
	return u
}

type session struct {
	access  string
	refresh string
}

func (s *RouterSuite) login(identifier, pass string) (session, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"identifier":"`+identifier+`","password":"`+pass+`"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httputil.Recorder(s.e, req)

	var out session
	for _, c := range rec.Result().Cookies() {
		if c.Name == "refresh_token" {
			out.refresh = c.Value
		}
	}
	if rec.Code == http.StatusOK {
		var body response.GeneralResponse[response.AuthResponse]
		s.r.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		out.access = body.Data.AccessToken
	}
	return out, rec
}
