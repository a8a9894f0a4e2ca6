package config

type RateLimitConfig struct {
	// Zero disables login throttling.
	LoginPerMinute int `mapstructure:"login_per_minute"`
}
