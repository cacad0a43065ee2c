package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors the environment variables the service understands.
type envConfig struct {
	Port           int           `env:"PORT"`
	DatabaseDSN    string        `env:"DATABASE_URL"`
	SecretKey      string        `env:"JWT_SECRET"`
	TokenTTL       time.Duration `env:"TOKEN_TTL"`
	BcryptCost     int           `env:"BCRYPT_COST"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	LogLevel       string        `env:"LOG_LEVEL"`
}

// parseEnv overlays values from set environment variables.
func parseEnv(config *Config) error {
	var e envConfig
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if e.Port != 0 {
		config.Port = e.Port
	}
	if e.DatabaseDSN != "" {
		config.DatabaseDSN = e.DatabaseDSN
	}
	if e.SecretKey != "" {
		config.SecretKey = e.SecretKey
	}
	if e.TokenTTL != 0 {
		config.TokenTTL = e.TokenTTL
	}
	if e.BcryptCost != 0 {
		config.BcryptCost = e.BcryptCost
	}
	if e.RequestTimeout != 0 {
		config.RequestTimeout = e.RequestTimeout
	}
	if e.LogLevel != "" {
		config.LogLevel = e.LogLevel
	}
	return nil
}
