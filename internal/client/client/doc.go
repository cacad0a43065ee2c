// Package client is the Go client for the gophauth service.
//
// GRPCClient dials every configured endpoint through a manual resolver and
// spreads calls over them with the round_robin balancer. Service errors
// come back as *common.RPCError carrying the same status and message the
// server produced; transport failures are reported as ErrUnavailable.
package client
