package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/logger"
	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/store"
	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/utils"
	"github.com/Monica-R-Kashyapa/kodnest-auth/models"
)

// authService is the concrete implementation of [AuthService].
// It handles registration, credential verification, and the admin listing
// using a [store.UserRepository] for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// All five fields are required. The UserID and email pre-checks give the
// specific conflict errors users see on the form; the store's uniqueness
// constraints remain the safety net when two registrations race past the
// pre-checks, and that case surfaces as the generic [ErrRegistrationFailed].
func (a *authService) RegisterUser(ctx context.Context, input RegistrationInput) error {
	log := logger.FromContext(ctx)

	if input.UserID == "" || input.Name == "" || input.Password == "" || input.Email == "" || input.Phone == "" {
		log.Error().Str("user_id", input.UserID).Msg("invalid registration data provided")
		return ErrInvalidDataProvided
	}

	idTaken, err := a.userRepository.ExistsByUserID(ctx, input.UserID)
	if err != nil {
		log.Err(err).Str("user_id", input.UserID).Msg("user id pre-check failed")
		return fmt.Errorf("user id pre-check failed: %w", err)
	}
	if idTaken {
		return ErrUserIDTaken
	}

	emailTaken, err := a.userRepository.ExistsByEmail(ctx, input.Email)
	if err != nil {
		log.Err(err).Str("user_id", input.UserID).Msg("email pre-check failed")
		return fmt.Errorf("email pre-check failed: %w", err)
	}
	if emailTaken {
		return ErrEmailTaken
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		log.Err(err).Str("user_id", input.UserID).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UserID:       input.UserID,
		Name:         input.Name,
		PasswordHash: passwordHash,
		Email:        input.Email,
		Phone:        input.Phone,
	}

	if err = a.userRepository.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("user_id", input.UserID).Msg("user creation ended with error")
		if errors.Is(err, store.ErrDuplicateUser) {
			// pre-checks passed but a concurrent registration won the race
			return ErrRegistrationFailed
		}
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	log.Info().Str("user_id", input.UserID).Msg("user registered")
	return nil
}

// Login authenticates an existing user by display name.
//
// Both the unknown-name and wrong-password cases return
// [ErrInvalidCredentials]; callers must not reveal which part failed.
func (a *authService) Login(ctx context.Context, name, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if name == "" || password == "" {
		log.Error().Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by name failed")
		return models.User{}, fmt.Errorf("user search by name failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, password) {
		log.Debug().Str("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	log.Info().Str("user_id", foundUser.UserID).Msg("user successfully logged in")
	return foundUser, nil
}

// ListUsers returns all registered accounts in user_id order.
func (a *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := a.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}
