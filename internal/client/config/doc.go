// Package config loads runtime configuration for the gophauth client.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file given with -c or -config.
//  3. Environment: AUTH_ENDPOINTS (comma separated), AUTH_TIMEOUT.
//  4. Flags: -e host:port[,host:port...] and -t timeout (e.g. "3s").
//
// # JSON schema
//
//	{
//	  "endpoints": ["10.0.0.1:50051", "10.0.0.2:50051"],
//	  "timeout": "5s"
//	}
package config
