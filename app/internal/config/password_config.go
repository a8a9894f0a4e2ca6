package config

type PasswordConfig struct {
	Cost         int  `mapstructure:"cost"`
	AcceptLegacy bool `mapstructure:"accept_legacy"`
}
