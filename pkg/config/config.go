package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Application settings, populated from environment variables.
type Config struct {
	Server  ServerConfig  `envPrefix:"SERVER_"`
	Logging LoggingConfig `envPrefix:"LOG_"`
	Storage StorageConfig `envPrefix:"STORAGE_"`
	HTTP    HTTPConfig    `envPrefix:"HTTP_"`
}

// Server settings
type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
}

// Logging settings
type LoggingConfig struct {
	Level string `env:"LEVEL" envDefault:"info"`
}

// Storage settings for the local campaign store. Entry is the fixed key
// the full collection is written under.
type StorageConfig struct {
	Path  string `env:"PATH" envDefault:"campaigns.db"`
	Entry string `env:"ENTRY" envDefault:"campaigns"`
}

// HTTP behaviour settings
type HTTPConfig struct {
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	WriteRatePerSecond int           `env:"WRITE_RATE_PER_SECOND" envDefault:"100"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
