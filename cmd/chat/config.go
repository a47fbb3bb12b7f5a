package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BinderAddr   string        `envconfig:"BINDER_ADDR" default:"localhost:5000"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"2s"`
	CallTimeout  time.Duration `envconfig:"CALL_TIMEOUT" default:"5s"`
	// CHAT_COLOURS disables colorized output when false
	Colours  bool   `envconfig:"CHAT_COLOURS" default:"true"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"WARN"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
