package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// BINDER_ADDR points at a running binder; the suite is skipped without it
	BinderAddr string `envconfig:"BINDER_ADDR"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
