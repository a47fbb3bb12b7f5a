package main

type Config struct {
	Host     string `env:"BINDER_HOST,default=localhost"`
	Port     int    `env:"BINDER_PORT,default=5000"`
	LogLevel string `env:"LOG_LEVEL,default=INFO"`
}
