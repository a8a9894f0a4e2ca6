package main

import (
	"context"
	"flag"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	server "backend/gestion-platform/app/api"
	"backend/gestion-platform/app/internal/config"
	"backend/gestion-platform/app/pkg/db"
	"backend/gestion-platform/app/pkg/logging"
	"backend/gestion-platform/app/pkg/redis"
	ctxutil "backend/gestion-platform/app/pkg/util/context"
	httpClientUtil "backend/gestion-platform/app/pkg/util/httpclient"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "apply database migrations and exit")
	flag.Parse()

	env := ctxutil.GetAppModeFromEnv()
	ctx := ctxutil.SetAppMode(context.Background(), env)

	logger := setupLogging(env)
	defer func() {
		_ = logger.Sync()
	}()

	cfg := loadConfiguration(env, logger)
	if *migrateOnly || cfg.DatabaseConfig.AutoMigrate {
		runMigrations(cfg, logger)
		if *migrateOnly {
			return
		}
	}

	database := setupDatabase(cfg, logger)
	defer closeDatabase(database, logger)

	redisClient := setupRedis(cfg, logger)
	defer closeRedis(redisClient, logger)

	httpClient := httpClientUtil.NewRestyClient(30*time.Second, logger)

	httpServer := createServer(cfg, logger, database, redisClient, httpClient)
	httpServer.Start(ctx)
}

func setupLogging(env ctxutil.AppMode) *zap.Logger {
	logConfig := logging.NewLogConfig("[gestion-platform]", env)
	logger, err := logConfig.NewLogging()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	return logger
}

func loadConfiguration(env ctxutil.AppMode, logger *zap.Logger) config.ApplicationConfig {
	cfg, err := config.ReadApplicationConfig(env, logger)
	if err != nil {
		panic(err)
	}
	return cfg
}

func runMigrations(cfg config.ApplicationConfig, logger *zap.Logger) {
	source := cfg.DatabaseConfig.MigrationsSource
	if err := db.Migrate(cfg.DatabaseConfig.PrimaryConnectionString(), source, logger); err != nil {
		logger.Fatal("failed to apply migrations", zap.String("source", source), zap.Error(err))
	}
}

func setupDatabase(cfg config.ApplicationConfig, logger *zap.Logger) *db.DB {
	database, err := db.NewDB(cfg, logger)
	if err != nil {
		panic(err)
	}
	return database
}

func closeDatabase(database *db.DB, logger *zap.Logger) {
	if err := database.Close(); err != nil {
		logger.Error("error closing database", zap.Error(err))
	} else {
		logger.Info("closed database connection")
	}
}

func setupRedis(cfg config.ApplicationConfig, logger *zap.Logger) redis.Redis {
	redisClient, err := redis.NewUniversalRedisClient(cfg.RedisConfig, logger)
	if err != nil {
		panic(err)
	}
	return redisClient
}

func closeRedis(redisClient redis.Redis, logger *zap.Logger) {
	if err := redisClient.Close(); err != nil {
		logger.Error("error closing redis connection", zap.Error(err))
	} else {
		logger.Info("closed redis connection")
	}
}

func createServer(cfg config.ApplicationConfig, logger *zap.Logger, database *db.DB, redisClient redis.Redis, httpClient *resty.Client) server.Server {
	return server.Server{
		Config:     cfg,
		Logger:     logger,
		DB:         database,
		Redis:      redisClient,
		HttpClient: httpClient,
	}
}
