package models

import "time"

// User represents a registered account. It is the only persisted entity of
// the application.
//
// UserID is caller-supplied at registration time and immutable afterwards.
// Name is the login identifier; the schema does not force it to be unique,
// so lookups by name resolve to the first match in UserID order.
// PasswordHash must always hold a bcrypt digest, never the plaintext password.
type User struct {
	// UserID is the primary key, chosen by the user during registration.
	UserID string `json:"user_id"`

	// Name is the display name and the credential used at login.
	Name string `json:"name"`

	// PasswordHash is the salted one-way hash of the user's password.
	// It is never serialized and never rendered in any view.
	PasswordHash string `json:"-"`

	// Email is unique across all users.
	Email string `json:"email"`

	// Phone has no uniqueness constraint.
	Phone string `json:"phone"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
