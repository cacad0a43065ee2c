// Package users is the credential store gateway: the only code that reads
// or writes user records.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Repository looks up and creates users by email.
//
// FindByEmail returns (nil, nil) when no user has that email; absence is not
// an error. Create assigns the ID and returns common.ErrorAlreadyExists when
// the email is already taken, including when a concurrent Create won the race.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
}
