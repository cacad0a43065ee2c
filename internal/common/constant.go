// Package common contains shared constants, sentinel errors and the
// structured RPC error used by both the gophauth server and its clients.
package common

// Structured error statuses. They follow HTTP semantics so that callers
// bridging the service to HTTP can pass them through unchanged.
const (
	StatusBadRequest   = 400
	StatusUnauthorized = 401
)

// Messages carried by the structured errors.
const (
	MessageUserExists         = "User already exists"
	MessageInvalidCredentials = "Invalid credentials"
	MessageInvalidToken       = "Invalid token"
	MessageInternal           = "internal error"
)
