// Package auth holds the credential primitives of the service: the bcrypt
// password hasher and the JWT token service.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the signed payload: the safe user view plus the registered
// timing claims (iat, exp) and a unique token id (jti).
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// View drops the registered claims.
func (c *Claims) View() models.UserView {
	return models.UserView{ID: c.UserID, Email: c.Email, Name: c.Name}
}

// TokenService signs and verifies HS256 tokens with a single secret.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret: []byte(cfg.SecretKey),
		ttl:    cfg.TokenTTL,
		now:    time.Now,
	}
}

// Sign issues a token for the view, valid for the configured TTL.
func (s *TokenService) Sign(view models.UserView) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: view.ID,
		Email:  view.Email,
		Name:   view.Name,
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tokenString, nil
}

// Verify checks signature, algorithm, expiry and payload shape and returns
// the view that was signed. Every failure is common.ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (models.UserView, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return models.UserView{}, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return models.UserView{}, common.ErrInvalidToken
	}
	if claims.UserID == "" || claims.Email == "" {
		return models.UserView{}, fmt.Errorf("%w: %w", common.ErrInvalidToken, errMissingIdentity)
	}

	return claims.View(), nil
}

var errMissingIdentity = errors.New("token carries no identity")
