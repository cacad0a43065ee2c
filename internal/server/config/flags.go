package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-p int       gRPC listen port
//	-d string    database DSN
//	-s string    JWT HMAC secret key
//	-t int       token TTL, minutes
//	-b int       bcrypt cost
//	-w duration  per-request timeout (e.g. "5s")
//	-l string    log level
//
// Only these flags are looked at; -c/-config is handled by parseJson.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-p", "-d", "-s", "-t", "-b", "-w", "-l"})

	fs := flag.NewFlagSet("gophauth", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.IntVar(&config.Port, "p", config.Port, "port to listen on")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	tokenTTL := fs.Int("t", int(config.TokenTTL.Minutes()), "token TTL (in minutes)")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.DurationVar(&config.RequestTimeout, "w", config.RequestTimeout, "request timeout")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// -t is in whole minutes; leave a finer-grained TTL alone unless set.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.TokenTTL = time.Duration(*tokenTTL) * time.Minute
		}
	})
	return nil
}
