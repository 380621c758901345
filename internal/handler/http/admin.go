package http

import (
	"net/http"

	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/logger"
)

// admin renders the account listing. Password hashes never reach the view:
// only the identifying fields are copied into rows.
func (h *Handler) admin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.AuthService.ListUsers(r.Context())
	if err != nil {
		log.Err(err).Msg("listing users failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	rows := make([]userRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, userRow{
			UserID: u.UserID,
			Name:   u.Name,
			Email:  u.Email,
			Phone:  u.Phone,
		})
	}

	h.render(w, r, http.StatusOK, "admin.html", adminView{
		Flash:   h.sessions.PopFlash(w, r),
		Session: h.sessions.FromRequest(r),
		Users:   rows,
	})
}
