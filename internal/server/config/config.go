// Package config handles configuration for the gophauth server: defaults,
// an optional JSON file, environment variables and command-line flags,
// applied in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the server. It is built once at startup
// and treated as read-only afterwards.
//
// Fields:
//   - Port: TCP port the gRPC endpoint listens on.
//   - DatabaseDSN: postgres:// URL (pgx) or sqlite: / file: DSN.
//   - SecretKey: HMAC secret for signing JWTs (HS256).
//   - TokenTTL: lifetime of every issued token.
//   - BcryptCost: bcrypt work factor for password hashes.
//   - RequestTimeout: deadline applied to each RPC.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	Port           int
	DatabaseDSN    string
	SecretKey      string
	TokenTTL       time.Duration
	BcryptCost     int
	RequestTimeout time.Duration
	LogLevel       string
}

var (
	ErrMissingPort     = errors.New("port is required")
	ErrMissingDSN      = errors.New("database DSN is required")
	ErrMissingSecret   = errors.New("secret key is required")
	ErrInvalidTokenTTL = errors.New("token TTL must be positive")
	ErrInvalidCost     = errors.New("bcrypt cost out of range")
	ErrInvalidTimeout  = errors.New("request timeout must be positive")
)

// LoadDefaults sets the values that have a safe default. DatabaseDSN and
// SecretKey deliberately have none.
func (c *Config) LoadDefaults() {
	c.Port = 50051
	c.TokenTTL = 2 * time.Hour
	c.BcryptCost = 10
	c.RequestTimeout = 5 * time.Second
	c.LogLevel = "info"
}

// Addr is the listen address derived from Port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate reports every missing or out-of-range setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, ErrMissingPort)
	}
	if c.DatabaseDSN == "" {
		errs = append(errs, ErrMissingDSN)
	}
	if c.SecretKey == "" {
		errs = append(errs, ErrMissingSecret)
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, ErrInvalidTokenTTL)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidCost, c.BcryptCost))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidTimeout)
	}
	return errors.Join(errs...)
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config, then the environment, then flags, and validates the result.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
