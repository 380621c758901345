package service

import (
	"context"

	"github.com/Monica-R-Kashyapa/kodnest-auth/models"
)

// RegistrationInput carries the five form fields required to create an
// account. The password arrives as plaintext and never leaves this layer
// unhashed.
type RegistrationInput struct {
	UserID   string
	Name     string
	Password string
	Email    string
	Phone    string
}

// AuthService implements the account business rules: registration with
// duplicate checks, credential verification, and the admin listing.
type AuthService interface {
	// RegisterUser validates input, pre-checks both uniqueness rules, hashes
	// the password and persists the account.
	// Returns ErrUserIDTaken, ErrEmailTaken, ErrInvalidDataProvided, or
	// ErrRegistrationFailed when the store rejects the insert (including the
	// constraint-race case).
	RegisterUser(ctx context.Context, input RegistrationInput) error

	// Login authenticates by display name and plaintext password. Unknown
	// name and wrong password are both normalized to ErrInvalidCredentials
	// so that responses cannot be used to enumerate accounts.
	Login(ctx context.Context, name, password string) (models.User, error)

	// ListUsers returns all registered accounts for the admin view.
	ListUsers(ctx context.Context) ([]models.User, error)
}
