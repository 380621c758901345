package http

import (
	"net/http"

	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/logger"
	"github.com/Monica-R-Kashyapa/kodnest-auth/models"
)

const msgLoginRequired = "Please login to continue."

// requireSession rejects anonymous requests. A request without a valid
// session cookie is sent back to the login page with a notice; the guard is
// only mounted when admin protection is enabled in config.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.sessions.FromRequest(r) == nil {
			log := logger.FromRequest(r)
			log.Debug().Str("uri", r.RequestURI).Msg("anonymous request to protected page")

			h.sessions.SetFlash(w, models.Flash{Message: msgLoginRequired, Level: models.FlashInfo})
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
