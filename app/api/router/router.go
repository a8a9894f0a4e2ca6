package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"backend/gestion-platform/app/api/controller"
	"backend/gestion-platform/app/api/middleware"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/internal/validator"
	ctxutil "backend/gestion-platform/app/pkg/util/context"
	echoUtil "backend/gestion-platform/app/pkg/util/echo"
	_ "backend/gestion-platform/docs"
)

const (
	// Base paths
	apiV1BasePath = "/api/v1"
	swaggerPath   = "/swagger/*"
	healthPath    = "/health"

	// Route prefixes
	authPrefix           = "/auth"
	usersPrefix          = "/users"
	tasksPrefix          = "/tasks"
	polesPrefix          = "/poles"
	userValidationPrefix = "/user-validation"
	taskValidationPrefix = "/task-validation"
	statsPrefix          = "/stats"
)

type Router struct {
	*echo.Echo
	res         runtime.Resource
	vals        *validator.Validators
	middleware  *middleware.Middleware
	controllers *controller.Controllers
}

// NewRouter @title Gestion Platform
// @description Task, user and pole management API
// @version 1.0
// @host localhost:8081
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func NewRouter(
	res runtime.Resource,
	vals *validator.Validators,
	middleware *middleware.Middleware,
	controllers *controller.Controllers,
) *Router {
	if controllers == nil {
		panic("controllers cannot be nil")
	}
	if vals == nil {
		panic("validators cannot be nil")
	}

	r := &Router{
		Echo:        echo.New(),
		res:         res,
		vals:        vals,
		middleware:  middleware,
		controllers: controllers,
	}

	r.setupEcho()
	r.setupMiddlewares()
	r.setupSwagger()
	r.setupHealthRoutes()
	r.setupRoutes()

	return r
}

func (r *Router) setupEcho() {
	r.Echo.HidePort = true
	r.Echo.HideBanner = true
	r.Echo.Validator = r.vals
	r.Echo.HTTPErrorHandler = echoUtil.NewHTTPErrorHandler(r.res)
}

func (r *Router) setupMiddlewares() {
	// CORS runs before routing so preflight requests never reach a handler.
	r.Echo.Pre(echoUtil.SetupCORSMiddleware(r.res))
	r.Echo.Use(echoMiddleware.RequestID())
	r.Echo.Use(echoUtil.SetupLoggerMiddleware(r.res))
	r.Echo.Use(echoMiddleware.Recover())
}

func (r *Router) setupSwagger() {
	env := ctxutil.GetAppModeFromEnv()
	if env == ctxutil.AppModeDev || env == ctxutil.AppModeLocal {
		r.Echo.Debug = true
		r.Echo.GET(swaggerPath, echoSwagger.WrapHandler)
	}
}

func (r *Router) setupHealthRoutes() {
	r.Echo.GET(healthPath, r.controllers.HealthController.HealthCheck)
}

func (r *Router) setupRoutes() {
	apiGroup := r.Echo.Group(apiV1BasePath)

	r.setupAuthRoutes(apiGroup)

	protected := apiGroup.Group("", r.middleware.RequireAuth())
	r.setupUserRoutes(protected)
	r.setupTaskRoutes(protected)
	r.setupPoleRoutes(protected)
	r.setupValidationRoutes(protected)
	r.setupStatsRoutes(protected)
}

func (r *Router) setupAuthRoutes(apiGroup *echo.Group) {
	authGroup := apiGroup.Group(authPrefix)
	authGroup.POST("/register", r.controllers.AuthController.Register)
	authGroup.POST("/login", r.controllers.AuthController.Login, r.middleware.RateLimitLogin())
	authGroup.POST("/logout", r.controllers.AuthController.Logout)
	authGroup.POST("/refresh", r.controllers.AuthController.RefreshToken)
	authGroup.GET("/me", r.controllers.AuthController.Me, r.middleware.RequireAuth())
}

func (r *Router) setupUserRoutes(g *echo.Group) {
	users := g.Group(usersPrefix)
	users.GET("", r.controllers.UserController.List)
	users.POST("", r.controllers.UserController.Create)
	users.GET("/:id", r.controllers.UserController.Get)
	users.PUT("/:id", r.controllers.UserController.Update)
	users.DELETE("/:id", r.controllers.UserController.Delete)
}

func (r *Router) setupTaskRoutes(g *echo.Group) {
	tasks := g.Group(tasksPrefix)
	tasks.GET("", r.controllers.TaskController.List)
	tasks.POST("", r.controllers.TaskController.Create)
	tasks.GET("/:id", r.controllers.TaskController.Get)
	tasks.PUT("/:id", r.controllers.TaskController.Update)
	tasks.DELETE("/:id", r.controllers.TaskController.Delete)
}

func (r *Router) setupPoleRoutes(g *echo.Group) {
	poles := g.Group(polesPrefix)
	poles.GET("", r.controllers.PoleController.List)
	poles.POST("", r.controllers.PoleController.Create)
	poles.GET("/:id", r.controllers.PoleController.Get)
	poles.PUT("/:id", r.controllers.PoleController.Update)
	poles.DELETE("/:id", r.controllers.PoleController.Delete)
}

func (r *Router) setupValidationRoutes(g *echo.Group) {
	g.PUT(userValidationPrefix+"/:id/:action", r.controllers.ValidationController.ValidateUser)
	g.PUT(taskValidationPrefix+"/:id/:action", r.controllers.ValidationController.ValidateTask)
}

func (r *Router) setupStatsRoutes(g *echo.Group) {
	g.GET(statsPrefix+"/tasks", r.controllers.StatsController.TaskStats)
}
