package config

import (
	"fmt"
	"net/url"
)

type DatabaseConfig struct {
	URI              string `mapstructure:"uri"`
	ReplicaURI       string `mapstructure:"replica_uri"`
	Protocol         string `mapstructure:"protocol"`
	URL              string `mapstructure:"url"`
	Name             string `mapstructure:"name"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Port             int    `mapstructure:"port"`
	SslMode          string `mapstructure:"ssl_mode"`
	RequireTLS       bool   `mapstructure:"require_tls"`
	TLSSkipVerify    bool   `mapstructure:"tls_skip_verify"`
	ConnectTimeout   int    `mapstructure:"connect_timeout"`
	MaxDBConns       int    `mapstructure:"max_db_conns"`
	MaxIdleConns     int    `mapstructure:"max_idle_db_conns"`
	MaxConnLifetime  int    `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime  int    `mapstructure:"max_conn_idle_time"`
	AutoMigrate      bool   `mapstructure:"auto_migrate"`
	MigrationsSource string `mapstructure:"migrations_source"`
}

// PrimaryConnectionString prefers the full URI and falls back to the discrete fields.
// It returns an empty string when neither is configured.
func (c DatabaseConfig) PrimaryConnectionString() string {
	if c.URI != "" {
		return c.URI
	}
	if c.URL == "" {
		return ""
	}
	return c.build(c.URL)
}

// ReplicaConnectionString returns an empty string when no replica is configured.
func (c DatabaseConfig) ReplicaConnectionString() string {
	return c.ReplicaURI
}

func (c DatabaseConfig) build(host string) string {
	protocol := c.Protocol
	if protocol == "" {
		protocol = "postgres"
	}
	sslMode := c.SslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	if c.Username != "" && c.Password != "" {
		return fmt.Sprintf(
			"%s://%s:%s@%s:%d/%s?sslmode=%s",
			protocol, c.Username, url.QueryEscape(c.Password), host, c.Port, c.Name, sslMode,
		)
	}
	return fmt.Sprintf(
		"%s://%s:%d/%s?sslmode=%s",
		protocol, host, c.Port, c.Name, sslMode,
	)
}
