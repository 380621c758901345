package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a required field is missing
	// or blank.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUserIDTaken is returned when the requested UserID already exists.
	ErrUserIDTaken = errors.New("user id already exists")

	// ErrEmailTaken is returned when the requested email already exists.
	ErrEmailTaken = errors.New("email already exists")

	// ErrRegistrationFailed is returned when persistence fails after the
	// pre-checks passed, including the constraint violation raised by a
	// racing registration. The caller surfaces it as a generic failure.
	ErrRegistrationFailed = errors.New("registration failed")

	// ErrInvalidCredentials covers both an unknown name and a wrong
	// password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid name or password")
)
