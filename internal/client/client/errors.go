package client

import "errors"

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrNoEndpoints = errors.New("no endpoints configured")
)
