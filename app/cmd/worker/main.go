package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"backend/gestion-platform/app/internal/config"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/pkg/db"
	"backend/gestion-platform/app/pkg/logging"
	"backend/gestion-platform/app/pkg/redis"
	ctxutil "backend/gestion-platform/app/pkg/util/context"
	httpClientUtil "backend/gestion-platform/app/pkg/util/httpclient"
	server "backend/gestion-platform/app/worker"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	env := ctxutil.GetAppModeFromEnv()
	ctx := ctxutil.SetAppMode(context.Background(), env)
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logConfig := logging.NewLogConfig("[gestion-worker]", env)
	logger, err := logConfig.NewLogging()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.ReadApplicationConfig(env, logger)
	if err != nil {
		panic(err)
	}

	database, err := db.NewDB(cfg, logger)
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("error closing database", zap.Error(err))
		}
	}()

	redisClient, err := redis.NewUniversalRedisClient(cfg.RedisConfig, logger)
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("error closing redis connection", zap.Error(err))
		}
	}()

	workerServer := server.Server(runtime.Resource{
		Config:     cfg,
		Logger:     logger,
		DB:         database,
		Redis:      redisClient,
		HttpClient: httpClientUtil.NewRestyClient(30*time.Second, logger),
	})
	if err := workerServer.Start(ctx); err != nil {
		logger.Error("worker exited with error", zap.Error(err))
	}
}
