package store

import (
	"context"

	"github.com/Monica-R-Kashyapa/kodnest-auth/models"
)

// UserRepository is the persistence interface for [models.User] records.
// Users are created once and never updated or deleted through this interface.
type UserRepository interface {
	// CreateUser persists a new user inside a transaction. Any uniqueness
	// constraint violation surfaces as [ErrDuplicateUser]; on every error
	// path the transaction is rolled back and no partial record remains.
	CreateUser(ctx context.Context, user models.User) error

	// FindUserByName returns the first user whose name matches, in user_id
	// order. Names are not unique; resolution to the lowest user_id is the
	// documented tie-break. Returns [ErrNoUserWasFound] on an empty result.
	FindUserByName(ctx context.Context, name string) (models.User, error)

	// ExistsByUserID reports whether a user with the given primary key exists.
	ExistsByUserID(ctx context.Context, userID string) (bool, error)

	// ExistsByEmail reports whether any user has the given email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ListUsers returns every user record in user_id order.
	ListUsers(ctx context.Context) ([]models.User, error)
}
