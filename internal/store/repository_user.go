package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/logger"
	"github.com/Monica-R-Kashyapa/kodnest-auth/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table and
// works identically over PostgreSQL and the embedded SQLite fallback.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user inside a single transaction.
//
// The deferred rollback is a no-op once the transaction commits, so every
// early return leaves the store without a partial record.
//
// Error handling:
//   - uniqueness constraint violation (user_id or email) → [ErrDuplicateUser].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: cannot begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := r.db.insertUser(user).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("user_id", user.UserID).Msg("error: insert failed")

		if isUniqueViolation(err) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: commit failed")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// FindUserByName retrieves the first user record whose name matches.
//
// Names carry no uniqueness constraint; when several users share one, the
// record with the lowest user_id wins. This tie-break is deliberate and
// pinned by tests rather than hidden behind driver ordering.
//
// Error handling:
//   - empty result → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByName(ctx context.Context, name string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectUserByName(name).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByName").Msg("error: building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&foundUser.UserID, &foundUser.Name, &foundUser.PasswordHash, &foundUser.Email, &foundUser.Phone, &foundUser.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindUserByName").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// ExistsByUserID reports whether a user with the given primary key exists.
func (r *userRepository) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	return r.exists(ctx, "user_id", userID)
}

// ExistsByEmail reports whether any user has the given email.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email", email)
}

func (r *userRepository) exists(ctx context.Context, column, value string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectUserExists(column, value).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.exists").Msg("error: building exists query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		log.Err(err).Str("func", "*userRepository.exists").Str("column", column).Msg("error: exists query failed")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return true, nil
}

// ListUsers returns every user record in user_id order.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectAllUsers().ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err = rows.Scan(&u.UserID, &u.Name, &u.PasswordHash, &u.Email, &u.Phone, &u.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: rows iteration error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return users, nil
}
