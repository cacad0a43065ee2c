package common

import (
	"errors"
	"fmt"
)

// RPCError is the only error shape that crosses the service boundary:
// a status and a message, nothing else. The wrapped cause stays on the
// server side and is reachable through errors.Is/errors.As.
type RPCError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`

	cause error
}

// NewRPCError builds an RPCError wrapping cause (which may be nil).
func NewRPCError(status int, message string, cause error) *RPCError {
	return &RPCError{Status: status, Message: message, cause: cause}
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *RPCError) Unwrap() error {
	return e.cause
}

// AsRPCError returns the RPCError in err's chain, if any.
func AsRPCError(err error) (*RPCError, bool) {
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr, true
	}
	return nil, false
}
