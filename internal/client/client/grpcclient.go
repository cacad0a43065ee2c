package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/api"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/resolver"
	"google.golang.org/grpc/resolver/manual"
	"google.golang.org/grpc/status"
)

const (
	resolverScheme = "gophauth"

	roundRobinConfig = `{"loadBalancingConfig":[{"round_robin":{}}]}`
)

type GRPCClient struct {
	conn    *grpc.ClientConn
	client  api.AuthServiceClient
	health  grpc_health_v1.HealthClient
	timeout time.Duration
}

// NewGRPCClient builds a client balanced over endpoints (host:port).
// Extra dial options are appended after the defaults, so callers can
// replace the dialer or credentials.
func NewGRPCClient(endpoints []string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	if len(endpoints) == 0 {
		return nil, ErrNoEndpoints
	}

	addrs := make([]resolver.Address, 0, len(endpoints))
	for _, e := range endpoints {
		addrs = append(addrs, resolver.Address{Addr: e})
	}

	r := manual.NewBuilderWithScheme(resolverScheme)
	r.InitialState(resolver.State{Addresses: addrs})

	dialOpts := append([]grpc.DialOption{
		grpc.WithResolvers(r),
		grpc.WithDefaultServiceConfig(roundRobinConfig),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(r.Scheme()+":///auth", dialOpts...)
	if err != nil {
		return nil, err
	}

	return &GRPCClient{
		conn:    conn,
		client:  api.NewAuthServiceClient(conn),
		health:  grpc_health_v1.NewHealthClient(conn),
		timeout: timeout,
	}, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *GRPCClient) Register(ctx context.Context, name, email, password string) (*api.AuthResponse, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.Register(ctx, &api.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

func (c *GRPCClient) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.Login(ctx, &api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

func (c *GRPCClient) Verify(ctx context.Context, token string) (*api.AuthResponse, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.Verify(ctx, &api.VerifyRequest{Token: token})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

// Ping asks the health service whether the auth service is serving.
func (c *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.health.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: api.ServiceName})
	if err != nil {
		return mapError(err)
	}
	if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}
	return nil
}

// mapError restores the structured error the server sent. Codes the
// service never produces mean the call did not get through.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.InvalidArgument:
		return common.NewRPCError(common.StatusBadRequest, st.Message(), err)
	case codes.Unauthenticated:
		return common.NewRPCError(common.StatusUnauthorized, st.Message(), err)
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
