package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var verifyInfo = &grpc.UnaryServerInfo{FullMethod: api.VerifyMethod}

func TestRecoveryInterceptor(t *testing.T) {
	s := newServer(&fakeAuth{})

	resp, err := s.recoveryInterceptor(context.Background(), nil, verifyInfo, func(ctx context.Context, req any) (any, error) {
		panic("nil map write")
	})

	assert.Nil(t, resp)
	requireStatus(t, err, codes.InvalidArgument, "internal error")
}

func TestRecoveryInterceptor_PassesThrough(t *testing.T) {
	s := newServer(&fakeAuth{})

	resp, err := s.recoveryInterceptor(context.Background(), nil, verifyInfo, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestTimeoutInterceptor(t *testing.T) {
	s := NewGRPCServer("", nopLogger(), &fakeAuth{}, 50*time.Millisecond)

	_, err := s.timeoutInterceptor(context.Background(), nil, verifyInfo, func(ctx context.Context, req any) (any, error) {
		deadline, ok := ctx.Deadline()
		require.True(t, ok, "deadline must be set")
		assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)

		<-ctx.Done()
		return nil, ctx.Err()
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTimeoutInterceptor_Disabled(t *testing.T) {
	s := NewGRPCServer("", nopLogger(), &fakeAuth{}, 0)

	_, err := s.timeoutInterceptor(context.Background(), nil, verifyInfo, func(ctx context.Context, req any) (any, error) {
		_, ok := ctx.Deadline()
		assert.False(t, ok)
		return nil, nil
	})
	require.NoError(t, err)
}

func TestLoggingInterceptor(t *testing.T) {
	log := &recordingLogger{}
	s := NewGRPCServer("", log, &fakeAuth{}, time.Second)

	_, err := s.loggingInterceptor(context.Background(), nil, verifyInfo, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.Unauthenticated, "Invalid token")
	})
	requireStatus(t, err, codes.Unauthenticated, "Invalid token")

	require.Len(t, log.entries, 1)
	e := log.entries[0]
	assert.Equal(t, "warn", e.level)
	assert.Contains(t, e.args, api.VerifyMethod)
	assert.Contains(t, e.args, "Unauthenticated")

	_, err = s.loggingInterceptor(context.Background(), nil, verifyInfo, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	require.Len(t, log.entries, 2)
	assert.Equal(t, "info", log.entries[1].level)
	assert.Contains(t, log.entries[1].args, "OK")
}
