package config

import "errors"

var (
	// ErrNoSecretKey is returned by validation when no session signing
	// secret was provided by any configuration source.
	ErrNoSecretKey = errors.New("session secret key is required")

	// ErrNoStorageConfigured is returned by validation when neither a
	// database DSN nor a SQLite fallback path is available.
	ErrNoStorageConfigured = errors.New("no user store configured")
)
