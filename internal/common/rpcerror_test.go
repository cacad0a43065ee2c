package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRPCError_ErrorAndUnwrap(t *testing.T) {
	err := NewRPCError(StatusUnauthorized, MessageInvalidToken, ErrInvalidToken)

	assert.Equal(t, "401: Invalid token", err.Error())
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestRPCError_NilCause(t *testing.T) {
	err := NewRPCError(StatusBadRequest, "email is invalid", nil)
	assert.Nil(t, err.Unwrap())
}

func TestAsRPCError(t *testing.T) {
	t.Run("wrapped", func(t *testing.T) {
		base := NewRPCError(StatusBadRequest, MessageUserExists, ErrDuplicateUser)
		wrapped := fmt.Errorf("register: %w", base)

		got, ok := AsRPCError(wrapped)
		require.True(t, ok)
		assert.Equal(t, StatusBadRequest, got.Status)
		assert.Equal(t, MessageUserExists, got.Message)
	})

	t.Run("plain error", func(t *testing.T) {
		got, ok := AsRPCError(errors.New("boom"))
		assert.False(t, ok)
		assert.Nil(t, got)
	})
}
