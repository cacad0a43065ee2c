package grpc

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// loggingInterceptor records method, duration and resulting code.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"method", info.FullMethod, "duration", time.Since(start), "code", code.String()}
	if code == codes.OK {
		s.logger.Info(ctx, "rpc handled", args...)
	} else {
		s.logger.Warn(ctx, "rpc failed", append(args, "message", status.Convert(err).Message())...)
	}
	return resp, err
}

// recoveryInterceptor turns a handler panic into the sanitized internal
// error instead of tearing down the connection.
func (s *GRPCServer) recoveryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if p := recover(); p != nil {
			s.logger.Error(ctx, "panic in handler", "method", info.FullMethod, "panic", p, "stack", string(debug.Stack()))
			resp = nil
			err = status.Error(codes.InvalidArgument, common.MessageInternal)
		}
	}()
	return handler(ctx, req)
}

// timeoutInterceptor bounds every call by the configured request timeout.
func (s *GRPCServer) timeoutInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if s.requestTimeout <= 0 {
		return handler(ctx, req)
	}
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()
	return handler(ctx, req)
}
