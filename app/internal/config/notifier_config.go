package config

import "time"

type NotifierConfig struct {
	WebhookURL string        `mapstructure:"webhook_url"`
	Token      string        `mapstructure:"token"`
	Timeout    time.Duration `mapstructure:"timeout"`
}
