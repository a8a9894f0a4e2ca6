package config

type RouterConfig struct {
	// Comma separated. Entries may be "*", a full origin or a "*.domain" wildcard.
	AllowedOrigins string `mapstructure:"allowed_origins"`
	AllowedHeaders string `mapstructure:"allowed_headers"`
}
