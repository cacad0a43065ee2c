package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/api"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	got []string

	resp    *api.AuthResponse
	err     error
	pingErr error
}

func (f *fakeClient) Register(_ context.Context, name, email, password string) (*api.AuthResponse, error) {
	f.got = []string{"register", name, email, password}
	return f.resp, f.err
}

func (f *fakeClient) Login(_ context.Context, email, password string) (*api.AuthResponse, error) {
	f.got = []string{"login", email, password}
	return f.resp, f.err
}

func (f *fakeClient) Verify(_ context.Context, token string) (*api.AuthResponse, error) {
	f.got = []string{"verify", token}
	return f.resp, f.err
}

func (f *fakeClient) Ping(context.Context) error {
	f.got = []string{"ping"}
	return f.pingErr
}

var anaResp = &api.AuthResponse{User: api.User{ID: "u-1", Email: "ana@x.com", Name: "Ana"}, Token: "tok"}

func run(t *testing.T, c *fakeClient, stdin string, args ...string) (int, string, string) {
	t.Helper()

	old := isTerminal
	t.Cleanup(func() { isTerminal = old })
	isTerminal = func(int) bool { return false }

	var out, errOut bytes.Buffer
	code := NewApp(c, strings.NewReader(stdin), 0, &out, &errOut).Run(context.Background(), args)
	return code, out.String(), errOut.String()
}

func TestRun_Register(t *testing.T) {
	c := &fakeClient{resp: anaResp}

	code, out, _ := run(t, c, "Ana\nana@x.com\nsecret1\n", "register")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, []string{"register", "Ana", "ana@x.com", "secret1"}, c.got)

	var got api.AuthResponse
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, *anaResp, got)
}

func TestRun_LoginRejected(t *testing.T) {
	c := &fakeClient{err: common.NewRPCError(400, "Invalid credentials", nil)}

	code, out, errOut := run(t, c, "ana@x.com\nwrong\n", "login")
	require.Equal(t, ExitError, code)
	assert.Empty(t, out)
	assert.Equal(t, []string{"login", "ana@x.com", "wrong"}, c.got)
	require.Contains(t, errOut, "{")
	assert.JSONEq(t, `{"status":400,"message":"Invalid credentials"}`, errOut[strings.Index(errOut, "{"):])
}

func TestRun_Verify(t *testing.T) {
	t.Run("token argument", func(t *testing.T) {
		c := &fakeClient{resp: anaResp}
		code, _, _ := run(t, c, "", "verify", "abc")
		require.Equal(t, ExitOK, code)
		assert.Equal(t, []string{"verify", "abc"}, c.got)
	})

	t.Run("prompted token", func(t *testing.T) {
		c := &fakeClient{resp: anaResp}
		code, _, errOut := run(t, c, "xyz\n", "verify")
		require.Equal(t, ExitOK, code)
		assert.Equal(t, []string{"verify", "xyz"}, c.got)
		assert.Contains(t, errOut, "Enter token")
	})

	t.Run("invalid token", func(t *testing.T) {
		c := &fakeClient{err: common.NewRPCError(401, "Invalid token", nil)}
		code, _, errOut := run(t, c, "", "verify", "bad")
		require.Equal(t, ExitError, code)
		assert.JSONEq(t, `{"status":401,"message":"Invalid token"}`, errOut)
	})
}

func TestRun_TransportError(t *testing.T) {
	c := &fakeClient{err: errors.New("server unavailable: connection refused")}

	code, _, errOut := run(t, c, "", "verify", "t")
	require.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "error: server unavailable")
}

func TestRun_Ping(t *testing.T) {
	code, out, _ := run(t, &fakeClient{}, "", "ping")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "SERVING\n", out)

	code, _, errOut := run(t, &fakeClient{pingErr: errors.New("server unavailable")}, "", "ping")
	require.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "server unavailable")
}

func TestRun_Usage(t *testing.T) {
	code, _, errOut := run(t, &fakeClient{}, "")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut, "usage:")

	code, _, errOut = run(t, &fakeClient{}, "", "frobnicate")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut, `unknown command "frobnicate"`)

	code, _, _ = run(t, &fakeClient{}, "", "help")
	assert.Equal(t, ExitOK, code)
}

func TestRun_PromptEOF(t *testing.T) {
	c := &fakeClient{resp: anaResp}

	code, _, _ := run(t, c, "", "register")
	assert.Equal(t, ExitError, code)
	assert.Nil(t, c.got, "client must not be called")
}
