package config

import "os"

type Config struct {
	Address  string
	LogLevel string
}

func New() *Config {
	return &Config{
		Address:  ":8080",
		LogLevel: "info",
	}
}

func ParseEnv(config *Config) {
	if address := os.Getenv("SERVER_ADDRESS"); address != "" {
		config.Address = address
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.LogLevel = logLevel
	}
}
