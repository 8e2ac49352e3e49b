package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/petaline/storefront/internal/domain/errors"
	"github.com/petaline/storefront/internal/domain/model"
	"github.com/petaline/storefront/internal/domain/repository"
)

// AuthUseCase handles registration and credential checks. Passwords are kept
// as provided; hashing and token security are outside this system's scope.
type AuthUseCase struct {
	users repository.UserRepository
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{users: users}
}

// RegisterInput carries the registration form.
type RegisterInput struct {
	Login    string
	Password string
	Name     string
	Phone    string
	Email    string
}

func (in RegisterInput) validate() error {
	if strings.TrimSpace(in.Login) == "" {
		return fmt.Errorf("%w: login is required", domainErrors.ErrValidation)
	}
	if len(in.Password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", domainErrors.ErrValidation)
	}
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", domainErrors.ErrValidation)
	}
	if !ValidateName(in.Name) {
		return fmt.Errorf("%w: name may contain only letters, spaces and hyphens", domainErrors.ErrValidation)
	}
	if strings.TrimSpace(in.Phone) == "" {
		return fmt.Errorf("%w: phone is required", domainErrors.ErrValidation)
	}
	if !ValidatePhone(in.Phone) {
		return fmt.Errorf("%w: phone must match +7(XXX)-XXX-XX-XX", domainErrors.ErrValidation)
	}
	if strings.TrimSpace(in.Email) == "" {
		return fmt.Errorf("%w: email is required", domainErrors.ErrValidation)
	}
	if !ValidateEmail(in.Email) {
		return fmt.Errorf("%w: invalid email format", domainErrors.ErrValidation)
	}
	return nil
}

// Register creates a new customer account. Duplicate login or email fails
// with ErrAlreadyExists. Registered accounts are never administrators.
func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	user, err := u.users.Create(ctx, model.User{
		Login:    strings.TrimSpace(in.Login),
		Password: in.Password,
		Name:     strings.TrimSpace(in.Name),
		Phone:    in.Phone,
		Email:    strings.TrimSpace(in.Email),
		IsAdmin:  false,
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate validates credentials and returns the matching user.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	user, err := u.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Password != password {
		return nil, domainErrors.ErrInvalidCredentials
	}
	return user, nil
}
