package config

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	ctxutil "backend/gestion-platform/app/pkg/util/context"
)

// bindEnv binds an environment variable with an optional default value
func bindEnv(configKey, envKey string, defaultValue ...interface{}) {
	if len(defaultValue) > 0 {
		viper.SetDefault(configKey, defaultValue[0])
	}
	viper.BindEnv(configKey, envKey)
}

type ApplicationConfig struct {
	ServerConfig    ServerConfig    `mapstructure:"server"`
	DatabaseConfig  DatabaseConfig  `mapstructure:"database"`
	RedisConfig     RedisConfig     `mapstructure:"redis"`
	RouterConfig    RouterConfig    `mapstructure:"router"`
	WorkerConfig    WorkerConfig    `mapstructure:"worker"`
	PasswordConfig  PasswordConfig  `mapstructure:"password"`
	JwtConfig       JwtConfig       `mapstructure:"jwt"`
	RateLimitConfig RateLimitConfig `mapstructure:"rate_limit"`
	CacheConfig     CacheConfig     `mapstructure:"cache"`
	NotifierConfig  NotifierConfig  `mapstructure:"notifier"`
}

func ReadApplicationConfig(env ctxutil.AppMode, logger *zap.Logger) (cfg ApplicationConfig, err error) {
	if env == "" {
		env = ctxutil.AppModeLocal
	}
	confFileName := fmt.Sprintf("config-%s", env)

	viper.SetConfigName(confFileName)
	viper.SetConfigType("yaml")

	viper.AddConfigPath("./config")
	// Package tests run from app/<layer>/<package>
	viper.AddConfigPath("../../../config")
	viper.AddConfigPath("../../../../config")

	if err := viper.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("error reading config file: %v", err)
	} else {
		logger.Info(
			"using config",
			zap.String("file", confFileName),
		)
	}
	viper.AutomaticEnv()

	// Server
	bindEnv("server.port", "SERVER_PORT", 8080)
	bindEnv("server.read_header_timeout", "SERVER_READ_HEADER_TIMEOUT", "10s")
	bindEnv("server.shutdown_timeout", "SERVER_SHUTDOWN_TIMEOUT", "30s")

	// Database
	bindEnv("database.uri", "DATABASE_URL")
	bindEnv("database.replica_uri", "DATABASE_REPLICA_URL")
	bindEnv("database.protocol", "DB_PROTOCOL", "postgres")
	bindEnv("database.url", "DB_URL")
	bindEnv("database.name", "DB_NAME")
	bindEnv("database.port", "DB_PORT", 5432)
	bindEnv("database.username", "DB_USERNAME")
	bindEnv("database.password", "DB_PASSWORD")
	bindEnv("database.ssl_mode", "SSL_MODE", "disable")
	bindEnv("database.require_tls", "DB_REQUIRE_TLS", false)
	bindEnv("database.tls_skip_verify", "DB_TLS_SKIP_VERIFY", false)
	bindEnv("database.connect_timeout", "DB_CONNECT_TIMEOUT", 30)
	bindEnv("database.max_db_conns", "DB_MAX_DB_CONNS", 10)
	bindEnv("database.max_idle_db_conns", "DB_MAX_IDLE_DB_CONNS", 5)
	bindEnv("database.max_conn_lifetime", "DB_MAX_CONN_LIFETIME", 300)
	bindEnv("database.max_conn_idle_time", "DB_MAX_CONN_IDLE_TIME", 60)
	bindEnv("database.auto_migrate", "DB_AUTO_MIGRATE", false)
	bindEnv("database.migrations_source", "DB_MIGRATIONS_SOURCE", "file://migrations")

	// Redis
	bindEnv("redis.hosts", "REDIS_HOSTS")
	bindEnv("redis.password", "REDIS_PASSWORD")
	bindEnv("redis.db", "REDIS_DB")
	bindEnv("redis.pool_size", "REDIS_POOL_SIZE")
	bindEnv("redis.min_idle_conns", "REDIS_MIN_IDLE_CONNS")
	bindEnv("redis.max_idle_conns", "REDIS_MAX_IDLE_CONNS")
	bindEnv("redis.write_timeout", "REDIS_WRITE_TIMEOUT")
	bindEnv("redis.read_timeout", "REDIS_READ_TIMEOUT")
	bindEnv("redis.conn_max_lifetime", "REDIS_CONN_MAX_LIFETIME")

	// Worker
	bindEnv("worker.pool_size", "WORKER_POOL_SIZE", 2)
	bindEnv("worker.stats_refresh_interval", "WORKER_STATS_REFRESH_INTERVAL", "5m")
	bindEnv("worker.overdue_report_cron", "WORKER_OVERDUE_REPORT_CRON", "0 7 * * *")
	bindEnv("worker.distributed_lock", "WORKER_DISTRIBUTED_LOCK", true)

	// Router
	bindEnv("router.allowed_origins", "ROUTER_ALLOWED_ORIGINS", "*")
	bindEnv("router.allowed_headers", "ROUTER_ALLOWED_HEADERS")

	// Password
	bindEnv("password.cost", "PASSWORD_BCRYPT_COST", 10)
	bindEnv("password.accept_legacy", "PASSWORD_ACCEPT_LEGACY", true)

	// JWT
	bindEnv("jwt.issuer", "JWT_ISSUER")
	bindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	bindEnv("jwt.access_expiration", "JWT_ACCESS_EXPIRATION", "1h")
	bindEnv("jwt.refresh_expiration", "JWT_REFRESH_EXPIRATION", "168h")

	// Rate limit
	bindEnv("rate_limit.login_per_minute", "RATE_LIMIT_LOGIN_PER_MINUTE", 0)

	// Cache
	bindEnv("cache.stats_ttl", "CACHE_STATS_TTL", "10m")

	// Notifier
	bindEnv("notifier.webhook_url", "NOTIFIER_WEBHOOK_URL")
	bindEnv("notifier.token", "NOTIFIER_TOKEN")
	bindEnv("notifier.timeout", "NOTIFIER_TIMEOUT", "10s")

	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %s", err.Error())
	}

	return cfg, err
}
