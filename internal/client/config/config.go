package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds runtime settings for the client.
//
// Fields:
//   - Endpoints: host:port of every server replica; calls are balanced
//     over them.
//   - Timeout: deadline applied to each call.
type Config struct {
	Endpoints []string
	Timeout   time.Duration
}

var ErrNoEndpoints = errors.New("at least one endpoint is required")

func (c *Config) LoadDefaults() {
	c.Endpoints = []string{"127.0.0.1:50051"}
	c.Timeout = 5 * time.Second
}

func (c *Config) Validate() error {
	if len(c.Endpoints) == 0 {
		return ErrNoEndpoints
	}
	return nil
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and the leading flags of args. It returns the arguments left after the
// flags (the command and its operands).
func LoadConfig(args []string) (*Config, []string, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, nil, err
	}
	rest, err := parseFlags(cfg, args)
	if err != nil {
		return nil, nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, rest, nil
}
