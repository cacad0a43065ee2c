package config

import (
	"flag"
	"io"
	"strings"
)

// parseFlags applies the leading flags of args and returns what follows
// them.
//
// Supported flags:
//
//	-e string    comma separated endpoint list
//	-t duration  per-call timeout
//	-c, -config  JSON config file (read by parseJson)
func parseFlags(cfg *Config, args []string) ([]string, error) {
	fs := flag.NewFlagSet("gophauth-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	endpoints := fs.String("e", strings.Join(cfg.Endpoints, ","), "comma separated list of server endpoints")
	fs.DurationVar(&cfg.Timeout, "t", cfg.Timeout, "per-call timeout")
	fs.String("c", "", "path to config file (short)")
	fs.String("config", "", "path to config file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "e" {
			cfg.Endpoints = splitEndpoints(strings.Split(*endpoints, ","))
		}
	})
	return fs.Args(), nil
}

// splitEndpoints trims entries and drops empty ones.
func splitEndpoints(in []string) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}
