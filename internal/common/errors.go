package common

import "errors"

var (
	// Repository-level errors.
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal         = errors.New("internal error")
	ErrDuplicateUser      = errors.New("duplicate user")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation error")

	// ErrInvalidToken covers every token verification failure: bad
	// signature, malformed payload and expiry are not told apart.
	ErrInvalidToken = errors.New("invalid token")
)
