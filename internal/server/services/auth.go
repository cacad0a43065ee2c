// Package services contains server-side business logic. AuthService is the
// orchestrator behind register, login and verify: it composes the user store,
// the password hasher and the token service, and it is the one place where
// failures become structured RPC errors.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
)

// PasswordHasher is satisfied by auth.BcryptHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenIssuer is satisfied by auth.TokenService.
type TokenIssuer interface {
	Sign(view models.UserView) (string, error)
	Verify(token string) (models.UserView, error)
}

// AuthService registers users, checks credentials and verifies tokens.
// Every error it returns is a *common.RPCError.
type AuthService struct {
	users  users.Repository
	hasher PasswordHasher
	tokens TokenIssuer
	logger logging.Logger
}

func NewAuthService(repo users.Repository, hasher PasswordHasher, tokens TokenIssuer, logger logging.Logger) *AuthService {
	return &AuthService{
		users:  repo,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("module", "auth_service"),
	}
}

// Register creates a user and returns it with a fresh token. An email that
// is already taken yields DuplicateUser, whether the pre-check or the
// store's unique index catches it.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.AuthResult, error) {
	email = normalizeEmail(email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, s.fault(ctx, "register: find user", err)
	}
	if existing != nil {
		return nil, duplicateUser(nil)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, s.fault(ctx, "register: hash password", err)
	}

	user, err := s.users.Create(ctx, &models.User{Email: email, Name: name, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			s.logger.Warn(ctx, "registration lost a race on email")
			return nil, duplicateUser(err)
		}
		return nil, s.fault(ctx, "register: create user", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return s.issue(ctx, user.View())
}

// Login checks the password and returns the user with a fresh token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, s.fault(ctx, "login: find user", err)
	}
	if user == nil {
		return nil, invalidCredentials()
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, invalidCredentials()
	}

	return s.issue(ctx, user.View())
}

// Verify validates token and answers with the identity it carries plus a
// newly issued token, so every successful check extends the session.
func (s *AuthService) Verify(ctx context.Context, token string) (*models.AuthResult, error) {
	view, err := s.tokens.Verify(token)
	if err != nil {
		s.logger.Debug(ctx, "token rejected", "error", err)
		return nil, common.NewRPCError(common.StatusUnauthorized, common.MessageInvalidToken, err)
	}

	return s.issue(ctx, view)
}

func (s *AuthService) issue(ctx context.Context, view models.UserView) (*models.AuthResult, error) {
	token, err := s.tokens.Sign(view)
	if err != nil {
		return nil, s.fault(ctx, "sign token", err)
	}
	return &models.AuthResult{User: view, Token: token}, nil
}

// fault logs an unexpected collaborator error and hides its text from the
// caller.
func (s *AuthService) fault(ctx context.Context, op string, err error) error {
	s.logger.Error(ctx, "unexpected failure", "op", op, "error", err)
	return common.NewRPCError(common.StatusBadRequest, common.MessageInternal, errors.Join(common.ErrorInternal, err))
}

func duplicateUser(cause error) error {
	return common.NewRPCError(common.StatusBadRequest, common.MessageUserExists, errors.Join(common.ErrDuplicateUser, cause))
}

func invalidCredentials() error {
	return common.NewRPCError(common.StatusBadRequest, common.MessageInvalidCredentials, common.ErrInvalidCredentials)
}

// normalizeEmail makes email matching case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
