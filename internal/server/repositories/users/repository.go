package users

import (
	"context"

	"github.com/dmitrijs2005/snippr/internal/server/models"
)

// Repository is the credential store: user records keyed by email.
// Email comparison is exact (case-sensitive).
type Repository interface {
	// Create stores a new user. Fails with common.ErrorAlreadyExists when
	// the email is already registered.
	Create(ctx context.Context, user *models.User) error

	// GetUserByEmail returns the user record, or common.ErrorNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
