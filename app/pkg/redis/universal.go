package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"backend/gestion-platform/app/internal/config"
)

// UniversalClient wraps redis.UniversalClient to handle both single-node and cluster setups
type UniversalClient struct {
	client    redis.UniversalClient
	log       *zap.Logger
	isCluster bool
}

// NewUniversalRedisClient creates a single-node client for one host and a cluster client for several.
func NewUniversalRedisClient(cfg config.RedisConfig, log *zap.Logger) (Redis, error) {
	hosts := strings.Split(cfg.Hosts, ",")
	for i, host := range hosts {
		hosts[i] = strings.TrimSpace(host)
	}

	var client redis.UniversalClient
	isCluster := len(hosts) > 1
	if isCluster {
		client = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:           hosts,
			Password:        cfg.Password,
			PoolSize:        cfg.PoolSize,
			MinIdleConns:    cfg.MinIdleConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			WriteTimeout:    time.Duration(cfg.WriteTimeout) * time.Second,
			ReadTimeout:     time.Duration(cfg.ReadTimeout) * time.Second,
			ConnMaxLifetime: time.Duration(cfg.ConnMaxLifetime) * time.Second,
		})
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:            hosts[0],
			Password:        cfg.Password,
			DB:              cfg.DB,
			PoolSize:        cfg.PoolSize,
			MinIdleConns:    cfg.MinIdleConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			WriteTimeout:    time.Duration(cfg.WriteTimeout) * time.Second,
			ReadTimeout:     time.Duration(cfg.ReadTimeout) * time.Second,
			ConnMaxLifetime: time.Duration(cfg.ConnMaxLifetime) * time.Second,
		})
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	log.Info("Redis client connected",
		zap.Strings("hosts", hosts),
		zap.Bool("is_cluster", isCluster))

	return &UniversalClient{
		client:    client,
		log:       log,
		isCluster: isCluster,
	}, nil
}

func (r *UniversalClient) GetUniversalClient() redis.UniversalClient {
	return r.client
}

func (r *UniversalClient) Close() error {
	return r.client.Close()
}

func (r *UniversalClient) Set(c context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(c, key, b, ttl).Err()
}

func (r *UniversalClient) Get(c context.Context, key string, outPtr any) error {
	b, err := r.client.Get(c, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(b, outPtr)
}

func (r *UniversalClient) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *UniversalClient) Exists(ctx context.Context, key string) (bool, error) {
	result, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, SkipNotFound(err)
	}
	return result >= 1, nil
}

func (r *UniversalClient) Reset(ctx context.Context) error {
	return r.client.FlushDB(ctx).Err()
}
