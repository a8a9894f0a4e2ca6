package config

// RedisConfig describes the cache and lock store. Hosts is a comma separated
// list; more than one host selects cluster mode, where DB is ignored.
type RedisConfig struct {
	Hosts           string `mapstructure:"hosts"`
	Password        string `mapstructure:"password"`
	DB              int    `mapstructure:"db"`
	PoolSize        int    `mapstructure:"pool_size"`
	MinIdleConns    int    `mapstructure:"min_idle_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}
