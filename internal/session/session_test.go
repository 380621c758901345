package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/config"
	"github.com/Monica-R-Kashyapa/kodnest-auth/models"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(config.App{
		SecretKey:       "test-secret",
		SessionIssuer:   "test-issuer",
		SessionDuration: time.Hour,
	})
}

func requestWithCookie(cookie *http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

var alice = models.User{UserID: "u1", Name: "Alice"}

func TestIssueCookie_RoundTrip(t *testing.T) {
	m := newTestManager(t)

	cookie, err := m.IssueCookie(alice)
	require.NoError(t, err)
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)

	sess := m.FromRequest(requestWithCookie(cookie))
	require.NotNil(t, sess)
	assert.Equal(t, "u1", sess.UserID)
	assert.Equal(t, "Alice", sess.Name)
}

func TestFromRequest_NoCookie(t *testing.T) {
	m := newTestManager(t)
	assert.Nil(t, m.FromRequest(requestWithCookie(nil)))
}

func TestFromRequest_TamperedToken(t *testing.T) {
	m := newTestManager(t)

	cookie, err := m.IssueCookie(alice)
	require.NoError(t, err)
	cookie.Value += "x"

	assert.Nil(t, m.FromRequest(requestWithCookie(cookie)))
}

func TestFromRequest_WrongKey(t *testing.T) {
	other := NewManager(config.App{
		SecretKey:       "other-secret",
		SessionIssuer:   "test-issuer",
		SessionDuration: time.Hour,
	})
	cookie, err := other.IssueCookie(alice)
	require.NoError(t, err)

	m := newTestManager(t)
	assert.Nil(t, m.FromRequest(requestWithCookie(cookie)))
}

func TestFromRequest_WrongIssuer(t *testing.T) {
	other := NewManager(config.App{
		SecretKey:       "test-secret",
		SessionIssuer:   "other-issuer",
		SessionDuration: time.Hour,
	})
	cookie, err := other.IssueCookie(alice)
	require.NoError(t, err)

	m := newTestManager(t)
	assert.Nil(t, m.FromRequest(requestWithCookie(cookie)))
}

func TestFromRequest_Expired(t *testing.T) {
	expired := NewManager(config.App{
		SecretKey:       "test-secret",
		SessionIssuer:   "test-issuer",
		SessionDuration: -time.Minute,
	})
	cookie, err := expired.IssueCookie(alice)
	require.NoError(t, err)

	m := newTestManager(t)
	assert.Nil(t, m.FromRequest(requestWithCookie(cookie)))
}

func TestIssueCookie_MissingParams(t *testing.T) {
	m := NewManager(config.App{})
	_, err := m.IssueCookie(alice)
	require.Error(t, err)
}

// TestClearCookie verifies that the logout cookie removes the session and
// that a cleared client parses as anonymous again.
func TestClearCookie(t *testing.T) {
	m := newTestManager(t)

	cleared := m.ClearCookie()
	assert.Equal(t, CookieName, cleared.Name)
	assert.Equal(t, -1, cleared.MaxAge)
	assert.Empty(t, cleared.Value)

	assert.Nil(t, m.FromRequest(requestWithCookie(cleared)))
}
