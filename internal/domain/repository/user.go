package repository

import (
	"context"

	"github.com/petaline/storefront/internal/domain/model"
)

// UserRepository describes access to registered users.
type UserRepository interface {
	// Create registers the user. Fails with ErrAlreadyExists when the login
	// or email is taken.
	Create(ctx context.Context, user model.User) (*model.User, error)
	GetByLogin(ctx context.Context, login string) (*model.User, error)
}
