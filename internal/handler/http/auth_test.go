package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/config"
	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/logger"
	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/service"
	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/session"
	"github.com/Monica-R-Kashyapa/kodnest-auth/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, input service.RegistrationInput) error
	loginFn        func(ctx context.Context, name, password string) (models.User, error)
	listUsersFn    func(ctx context.Context) ([]models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, input service.RegistrationInput) error {
	return m.registerUserFn(ctx, input)
}

func (m *mockAuthService) Login(ctx context.Context, name, password string) (models.User, error) {
	return m.loginFn(ctx, name, password)
}

func (m *mockAuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testAppConfig() config.App {
	return config.App{
		SecretKey:       "handler-test-secret",
		SessionIssuer:   "kodnest-auth-test",
		SessionDuration: time.Hour,
		LandingURL:      "https://kodnest-netflix.vercel.app/",
	}
}

// newTestHandler builds a Handler with the given AuthService mock and a real
// session manager signed with a test key.
func newTestHandler(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	cfg := testAppConfig()
	return NewHandler(
		&service.Services{AuthService: auth},
		session.NewManager(cfg),
		cfg,
		logger.Nop(),
	)
}

func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// postForm performs a form POST against the handler under test.
func postForm(h http.HandlerFunc, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func registrationForm() url.Values {
	return url.Values{
		"user_id":  {"u-100"},
		"name":     {"monica"},
		"password": {"s3cret"},
		"email":    {"monica@example.com"},
		"phone":    {"+91-99999-00001"},
	}
}

// findCookie returns the named Set-Cookie entry from the recorded response,
// or nil when absent.
func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ─────────────────────────────────────────────
// Index
// ─────────────────────────────────────────────

func TestIndex_RedirectsToLogin(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))
	rr := httptest.NewRecorder()
	h.index(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
}

// ─────────────────────────────────────────────
// Registration
// ─────────────────────────────────────────────

func TestRegisterForm_RendersPage(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/register", nil))
	rr := httptest.NewRecorder()
	h.registerForm(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `action="/register"`)
	assert.Contains(t, rr.Body.String(), `name="user_id"`)
}

func TestRegisterSubmit_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		registerErr error
		wantStatus  int
		wantBody    string
	}{
		{
			name:        "missing fields re-render the form as a client error",
			registerErr: service.ErrInvalidDataProvided,
			wantStatus:  http.StatusBadRequest,
			wantBody:    msgFieldsRequired,
		},
		{
			name:        "taken user id renders a specific notice",
			registerErr: service.ErrUserIDTaken,
			wantStatus:  http.StatusOK,
			wantBody:    msgUserIDExists,
		},
		{
			name:        "taken email renders a specific notice",
			registerErr: service.ErrEmailTaken,
			wantStatus:  http.StatusOK,
			wantBody:    msgEmailExists,
		},
		{
			name:        "insert race renders a generic failure",
			registerErr: service.ErrRegistrationFailed,
			wantStatus:  http.StatusOK,
			wantBody:    msgRegistrationFailed,
		},
		{
			name:        "unexpected store error is a server error",
			registerErr: assert.AnError,
			wantStatus:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &mockAuthService{
				registerUserFn: func(_ context.Context, _ service.RegistrationInput) error {
					return tt.registerErr
				},
			})

			rr := postForm(h.registerSubmit, "/register", registrationForm())

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRegisterSubmit_Success(t *testing.T) {
	var captured service.RegistrationInput
	h := newTestHandler(t, &mockAuthService{
		registerUserFn: func(_ context.Context, input service.RegistrationInput) error {
			captured = input
			return nil
		},
	})

	rr := postForm(h.registerSubmit, "/register", registrationForm())

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))

	// All five form fields must reach the service untouched.
	assert.Equal(t, "u-100", captured.UserID)
	assert.Equal(t, "monica", captured.Name)
	assert.Equal(t, "s3cret", captured.Password)
	assert.Equal(t, "monica@example.com", captured.Email)
	assert.Equal(t, "+91-99999-00001", captured.Phone)

	// The success notice travels via the flash cookie.
	flash := findCookie(rr, session.FlashCookieName)
	require.NotNil(t, flash)
	assert.NotEmpty(t, flash.Value)

	// Registration must not log the user in.
	assert.Nil(t, findCookie(rr, session.CookieName))
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLoginForm_RendersPage(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/login", nil))
	rr := httptest.NewRecorder()
	h.loginForm(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `action="/login"`)
}

func TestLoginSubmit_InvalidCredentials(t *testing.T) {
	for _, name := range []string{"unknown name", "wrong password"} {
		t.Run(name, func(t *testing.T) {
			h := newTestHandler(t, &mockAuthService{
				loginFn: func(_ context.Context, _, _ string) (models.User, error) {
					return models.User{}, service.ErrInvalidCredentials
				},
			})

			rr := postForm(h.loginSubmit, "/login", url.Values{
				"name":     {"monica"},
				"password": {"nope"},
			})

			// Both failure modes produce the identical response so that the
			// form cannot be used to probe which names exist.
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), msgInvalidCredentials)
			assert.Nil(t, findCookie(rr, session.CookieName))
		})
	}
}

func TestLoginSubmit_MissingFields(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	})

	rr := postForm(h.loginSubmit, "/login", url.Values{})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), msgInvalidCredentials)
	assert.Nil(t, findCookie(rr, session.CookieName))
}

func TestLoginSubmit_Success(t *testing.T) {
	user := models.User{UserID: "u-100", Name: "monica"}
	h := newTestHandler(t, &mockAuthService{
		loginFn: func(_ context.Context, name, password string) (models.User, error) {
			assert.Equal(t, "monica", name)
			assert.Equal(t, "s3cret", password)
			return user, nil
		},
	})

	rr := postForm(h.loginSubmit, "/login", url.Values{
		"name":     {"monica"},
		"password": {"s3cret"},
	})

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "https://kodnest-netflix.vercel.app/", rr.Header().Get("Location"))

	// The session cookie must decode back to the authenticated user.
	cookie := findCookie(rr, session.CookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(cookie)
	got := session.NewManager(testAppConfig()).FromRequest(req)
	require.NotNil(t, got)
	assert.Equal(t, "u-100", got.UserID)
	assert.Equal(t, "monica", got.Name)

	require.NotNil(t, findCookie(rr, session.FlashCookieName))
}

// ─────────────────────────────────────────────
// Logout
// ─────────────────────────────────────────────

func TestLogout_ClearsSession(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/logout", nil))
	rr := httptest.NewRecorder()
	h.logout(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))

	cleared := findCookie(rr, session.CookieName)
	require.NotNil(t, cleared)
	assert.Equal(t, -1, cleared.MaxAge)
	assert.Empty(t, cleared.Value)
}

// Logout with no active session behaves the same as with one.
func TestLogout_Idempotent(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{})

	for i := 0; i < 2; i++ {
		req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/logout", nil))
		rr := httptest.NewRecorder()
		h.logout(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		require.NotNil(t, findCookie(rr, session.CookieName))
	}
}
