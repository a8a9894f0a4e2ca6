package api

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/net/http2"

	"backend/gestion-platform/app/api/controller"
	"backend/gestion-platform/app/api/middleware"
	"backend/gestion-platform/app/api/router"
	"backend/gestion-platform/app/database/repository"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/internal/validator"
	"backend/gestion-platform/app/manager"
	ctxutil "backend/gestion-platform/app/pkg/util/context"
)

// Server serves the HTTP API until ctx is cancelled or SIGINT/SIGTERM arrives.
type Server runtime.Resource

func (s *Server) Start(ctx context.Context) {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := s.newRouter(runtime.Resource(*s))
	serverErr := s.serve(r)

	select {
	case <-ctx.Done():
		s.Logger.Info("Received shutdown signal")
	case err := <-serverErr:
		s.Logger.Error("Received error from server, initiating shutdown", zap.Error(err))
	}

	s.shutdown(r)
}

func (s *Server) newRouter(res runtime.Resource) *router.Router {
	s.Logger.Info("Initializing application components")

	repositories := repository.NewRepositories(res)
	managers := manager.NewManagers(res, repositories)

	return router.NewRouter(
		res,
		validator.NewValidators(res),
		middleware.NewMiddleware(res, managers.Jwt),
		controller.NewControllers(managers, res),
	)
}

func (s *Server) serve(r *router.Router) <-chan error {
	serverErr := make(chan error, 1)
	address := fmt.Sprintf(":%d", s.Config.ServerConfig.Port)
	r.Server.ReadHeaderTimeout = s.Config.ServerConfig.ReadHeaderTimeout

	go func() {
		s.Logger.Info("Starting HTTP Server", zap.String("address", address))
		serverErr <- r.StartH2CServer(address, &http2.Server{})
	}()

	s.Logger.Info(
		"Serving until error or shutdown",
		zap.Int("port", s.Config.ServerConfig.Port),
		zap.String("env", string(ctxutil.GetAppModeFromEnv())),
		zap.String("allowed_origins", s.Config.RouterConfig.AllowedOrigins),
	)
	return serverErr
}

func (s *Server) shutdown(r *router.Router) {
	timeout := s.Config.ServerConfig.ShutdownTimeoutOrDefault()
	s.Logger.Info("Starting graceful shutdown", zap.Duration("timeout", timeout))

	// The parent context is already done here.
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := r.Shutdown(ctx); err != nil {
		s.Logger.Error("Could not shutdown HTTP server gracefully", zap.Error(err))
		return
	}
	s.Logger.Info("Shutdown complete")
}
