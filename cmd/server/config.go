package main

import "time"

type Config struct {
	Host                string        `env:"HOST,default=localhost"`
	Port                int           `env:"PORT,default=8000"`
	AdvertisedHost      string        `env:"ADVERTISED_HOST"`
	BinderAddr          string        `env:"BINDER_ADDR,default=localhost:5000"`
	HistoryLimit        int           `env:"HISTORY_LIMIT,default=50"`
	RegistrationTimeout time.Duration `env:"REGISTRATION_TIMEOUT,default=5s"`
	DebugPort           int           `env:"DEBUG_PORT,default=8081"`
	LogLevel            string        `env:"LOG_LEVEL,default=INFO"`
}

// Advertised is the host published to the binder, the bind host by default.
func (c Config) Advertised() string {
	if c.AdvertisedHost != "" {
		return c.AdvertisedHost
	}
	return c.Host
}
