package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/api"
	"github.com/dmitrijs2005/gophauth/internal/common"
)

// AuthClient is satisfied by *client.GRPCClient.
type AuthClient interface {
	Register(ctx context.Context, name, email, password string) (*api.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Verify(ctx context.Context, token string) (*api.AuthResponse, error)
	Ping(ctx context.Context) error
}

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type App struct {
	client AuthClient
	reader *bufio.Reader
	out    io.Writer
	errOut io.Writer
	fd     int
}

// NewApp builds an App reading from in. fd is the descriptor used for
// hidden password input when it is a terminal.
func NewApp(c AuthClient, in io.Reader, fd int, out, errOut io.Writer) *App {
	return &App{
		client: c,
		reader: bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		fd:     fd,
	}
}

// NewStdApp wires the App to the process's standard streams.
func NewStdApp(c AuthClient) *App {
	return NewApp(c, os.Stdin, int(os.Stdin.Fd()), os.Stdout, os.Stderr)
}

// Run executes one command and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return ExitUsage
	}

	var (
		res *api.AuthResponse
		err error
	)

	switch cmd := args[0]; cmd {
	case "register":
		res, err = a.register(ctx)
	case "login":
		res, err = a.login(ctx)
	case "verify":
		res, err = a.verify(ctx, args[1:])
	case "ping":
		if err = a.client.Ping(ctx); err == nil {
			fmt.Fprintln(a.out, "SERVING")
			return ExitOK
		}
	case "help", "-h", "--help":
		a.usage()
		return ExitOK
	default:
		fmt.Fprintf(a.errOut, "unknown command %q\n", cmd)
		a.usage()
		return ExitUsage
	}

	if err != nil {
		a.printError(err)
		return ExitError
	}

	a.printJSON(a.out, res)
	return ExitOK
}

func (a *App) usage() {
	fmt.Fprintln(a.errOut, "usage: gophauth-client [-e host:port,...] [-t timeout] [-c file] register|login|verify [token]|ping")
}

func (a *App) printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// printError writes a structured error as JSON; anything else (a transport
// failure, a broken prompt) as plain text.
func (a *App) printError(err error) {
	if rpcErr, ok := common.AsRPCError(err); ok {
		a.printJSON(a.errOut, rpcErr)
		return
	}
	fmt.Fprintln(a.errOut, "error:", err)
}
