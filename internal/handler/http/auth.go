package http

import (
	"errors"
	"net/http"

	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/logger"
	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/service"
	"github.com/Monica-R-Kashyapa/kodnest-auth/models"
)

// User-visible notices. The invalid-credentials message is shared by the
// unknown-name and wrong-password cases so responses cannot be used to probe
// which accounts exist.
const (
	msgUserIDExists       = "User ID already exists!"
	msgEmailExists        = "Email already exists!"
	msgRegistrationOK     = "Registration successful! Please login."
	msgRegistrationFailed = "Registration failed. Please try again."
	msgFieldsRequired     = "All fields are required."
	msgInvalidCredentials = "Invalid name or password!"
	msgLoginOK            = "Login successful!"
	msgLoggedOut          = "You have been logged out!"
)

// index unconditionally redirects to the login page.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "register.html", formView{Flash: h.sessions.PopFlash(w, r)})
}

// registerSubmit consumes the registration form.
//
// Conflicts re-render the form with a specific notice at 200, the way the
// form always behaved; only a missing field is a client error proper.
func (h *Handler) registerSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("malformed registration form")
		http.Error(w, "malformed form data", http.StatusBadRequest)
		return
	}

	input := service.RegistrationInput{
		UserID:   r.PostFormValue("user_id"),
		Name:     r.PostFormValue("name"),
		Password: r.PostFormValue("password"),
		Email:    r.PostFormValue("email"),
		Phone:    r.PostFormValue("phone"),
	}

	if err := h.services.AuthService.RegisterUser(ctx, input); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Debug().Msg("registration with missing fields")
			h.render(w, r, http.StatusBadRequest, "register.html",
				formView{Flash: &models.Flash{Message: msgFieldsRequired, Level: models.FlashError}})
		case errors.Is(err, service.ErrUserIDTaken):
			log.Debug().Str("user_id", input.UserID).Msg("duplicate user id at registration")
			h.render(w, r, http.StatusOK, "register.html",
				formView{Flash: &models.Flash{Message: msgUserIDExists, Level: models.FlashError}})
		case errors.Is(err, service.ErrEmailTaken):
			log.Debug().Str("user_id", input.UserID).Msg("duplicate email at registration")
			h.render(w, r, http.StatusOK, "register.html",
				formView{Flash: &models.Flash{Message: msgEmailExists, Level: models.FlashError}})
		case errors.Is(err, service.ErrRegistrationFailed):
			log.Err(err).Str("user_id", input.UserID).Msg("registration could not be persisted")
			h.render(w, r, http.StatusOK, "register.html",
				formView{Flash: &models.Flash{Message: msgRegistrationFailed, Level: models.FlashError}})
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	h.sessions.SetFlash(w, models.Flash{Message: msgRegistrationOK, Level: models.FlashSuccess})
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login.html", formView{Flash: h.sessions.PopFlash(w, r)})
}

// loginSubmit consumes the login form and, on success, binds the client to
// the user via the session cookie before redirecting to the external landing
// destination.
func (h *Handler) loginSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("malformed login form")
		http.Error(w, "malformed form data", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, r.PostFormValue("name"), r.PostFormValue("password"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Debug().Msg("login with missing fields")
			h.render(w, r, http.StatusBadRequest, "login.html",
				formView{Flash: &models.Flash{Message: msgInvalidCredentials, Level: models.FlashError}})
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Debug().Msg("failed login attempt")
			h.render(w, r, http.StatusOK, "login.html",
				formView{Flash: &models.Flash{Message: msgInvalidCredentials, Level: models.FlashError}})
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	cookie, err := h.sessions.IssueCookie(user)
	if err != nil {
		log.Err(err).Msg("issuing session cookie failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, cookie)
	h.sessions.SetFlash(w, models.Flash{Message: msgLoginOK, Level: models.FlashSuccess})
	http.Redirect(w, r, h.cfg.LandingURL, http.StatusFound)
}

// logout clears all session state for the client. It is idempotent: with no
// active session the cleared cookie and the notice are still sent.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessions.ClearCookie())
	h.sessions.SetFlash(w, models.Flash{Message: msgLoggedOut, Level: models.FlashInfo})
	http.Redirect(w, r, "/login", http.StatusFound)
}
