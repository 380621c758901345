// Package session manages the cookie-backed state that identifies a logged-in
// client, plus the one-time flash notices rendered on the next page.
//
// Session state is a signed HS256 JWT carried in a cookie; the server keeps
// nothing, so "clearing the session" simply expires the cookie. A client with
// no cookie, a tampered cookie, or an expired one is anonymous.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/config"
	"github.com/Monica-R-Kashyapa/kodnest-auth/models"
)

// CookieName is the session cookie.
const CookieName = "kn_session"

var errInvalidSessionParams = errors.New("invalid params for issuing a session")

// Manager issues, parses, and clears session cookies. It is safe for
// concurrent use; all state is read-only after construction.
type Manager struct {
	signKey  string
	issuer   string
	duration time.Duration
}

// NewManager constructs a Manager from the application config.
func NewManager(cfg config.App) *Manager {
	return &Manager{
		signKey:  cfg.SecretKey,
		issuer:   cfg.SessionIssuer,
		duration: cfg.SessionDuration,
	}
}

// IssueCookie binds the client to the given user: it signs a session token
// carrying the UserID as subject and the display name as a custom claim, and
// wraps it in an HttpOnly cookie scoped to the whole site.
func (m *Manager) IssueCookie(user models.User) (*http.Cookie, error) {
	if m.signKey == "" || m.issuer == "" || m.duration == 0 {
		return nil, errInvalidSessionParams
	}

	now := time.Now()
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   user.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Name: user.Name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(m.signKey))
	if err != nil {
		return nil, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return &http.Cookie{
		Name:     CookieName,
		Value:    tokenString,
		Path:     "/",
		Expires:  now.Add(m.duration),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// FromRequest returns the session bound to the request, or nil if the client
// is anonymous. Every failure mode (no cookie, bad signature, wrong issuer,
// expired token) is treated as anonymous rather than as an error, because an
// invalid cookie and no cookie mean the same thing to the handlers.
func (m *Manager) FromRequest(r *http.Request) *models.Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (any, error) {
		return []byte(m.signKey), nil
	}, jwt.WithIssuer(m.issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil
	}

	return &models.Session{
		UserID: claims.Subject,
		Name:   claims.Name,
	}
}

// ClearCookie returns a cookie that removes any session state from the
// client. Sending it to a client with no session is a harmless no-op, which
// makes logout idempotent.
func (m *Manager) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
