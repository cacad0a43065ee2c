// Package grpc exposes the auth orchestrator over gRPC: it decodes and
// validates requests, maps orchestrator errors to gRPC statuses, and owns
// the server lifecycle (interceptors, health service, graceful stop).
package grpc

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/api"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// AuthService is what the handlers delegate to; *services.AuthService
// satisfies it.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.AuthResult, error)
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	Verify(ctx context.Context, token string) (*models.AuthResult, error)
}

type GRPCServer struct {
	address        string
	auth           AuthService
	logger         logging.Logger
	requestTimeout time.Duration
	validate       *validator.Validate
	health         *health.Server
}

func NewGRPCServer(address string, l logging.Logger, auth AuthService, requestTimeout time.Duration) *GRPCServer {
	return &GRPCServer{
		address:        address,
		auth:           auth,
		logger:         l.With("module", "grpc_server"),
		requestTimeout: requestTimeout,
		validate:       newValidator(),
		health:         health.NewServer(),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.loggingInterceptor,
		s.recoveryInterceptor,
		s.timeoutInterceptor,
	))

	api.RegisterAuthServiceServer(srv, s)
	grpc_health_v1.RegisterHealthServer(srv, s.health)

	s.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(api.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then drains in-flight
// calls and returns nil.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			s.health.Shutdown()
			srv.GracefulStop()
		case <-stopped:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}
