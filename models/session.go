package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the JWT claim set carried by the session cookie.
//
// The subject claim holds the authenticated UserID; Name duplicates the
// display name so that views can greet the user without a store lookup.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Name is the display name of the authenticated user.
	Name string `json:"name"`
}

// Session is the decoded, validated session state of one client.
// A nil *Session means the client is anonymous.
type Session struct {
	// UserID identifies the authenticated user. Primary key of [User].
	UserID string

	// Name is the display name bound at login time.
	Name string
}
