package config

import "time"

type CacheConfig struct {
	StatsTTL time.Duration `mapstructure:"stats_ttl"`
}
