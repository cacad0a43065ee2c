// Package cli is the gophauth command-line client.
//
// Usage:
//
//	gophauth-client [-e host:port,...] [-t timeout] [-c file] <command> [args]
//
// Commands:
//
//	register        prompt for name, email and password and create an account
//	login           prompt for email and password and obtain a token
//	verify [token]  check a token (prompted when omitted) and renew it
//	ping            check that the service is serving
//
// A successful call prints the {user, token} result as JSON on stdout. A
// rejected call prints the {status, message} error as JSON on stderr and
// exits with status 1. Prompts go to stderr so stdout stays machine-readable.
package cli
