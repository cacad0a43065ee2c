package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type envConfig struct {
	Endpoints []string      `env:"AUTH_ENDPOINTS" envSeparator:","`
	Timeout   time.Duration `env:"AUTH_TIMEOUT"`
}

func parseEnv(cfg *Config) error {
	var e envConfig
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if eps := splitEndpoints(e.Endpoints); len(eps) > 0 {
		cfg.Endpoints = eps
	}
	if e.Timeout != 0 {
		cfg.Timeout = e.Timeout
	}
	return nil
}
