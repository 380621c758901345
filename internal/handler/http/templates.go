package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/logger"
	"github.com/Monica-R-Kashyapa/kodnest-auth/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// formView is the data passed to the login and register pages.
type formView struct {
	Flash *models.Flash
}

// userRow is one row of the admin table. PasswordHash is deliberately not
// part of this type.
type userRow struct {
	UserID string
	Name   string
	Email  string
	Phone  string
}

// adminView is the data passed to the admin listing page.
type adminView struct {
	Flash   *models.Flash
	Session *models.Session
	Users   []userRow
}

// render writes the named page with the given status. A template execution
// failure mid-body cannot be reported to the client anymore, so it is only
// logged.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := pageTemplates.ExecuteTemplate(w, page, data); err != nil {
		logger.FromRequest(r).Err(err).Str("page", page).Msg("template execution failed")
	}
}
