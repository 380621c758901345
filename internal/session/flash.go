package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/utils"
	"github.com/Monica-R-Kashyapa/kodnest-auth/models"
)

// FlashCookieName is the one-time notice cookie.
const FlashCookieName = "kn_flash"

// SetFlash stores a one-time notice for the next rendered page. The payload
// is base64-encoded JSON followed by an HMAC-SHA256 signature under the
// session secret, so clients cannot forge or alter the message text.
func (m *Manager) SetFlash(w http.ResponseWriter, flash models.Flash) {
	payload, err := json.Marshal(flash)
	if err != nil {
		return
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    encoded + "." + utils.HashString(encoded, m.signKey),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash returns the pending notice, if any, and clears it so it renders
// exactly once. Malformed or tampered cookies are silently dropped.
func (m *Manager) PopFlash(w http.ResponseWriter, r *http.Request) *models.Flash {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	// clear regardless of whether the value verifies
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	encoded, signature, found := strings.Cut(cookie.Value, ".")
	if !found || !utils.VerifyString(encoded, signature, m.signKey) {
		return nil
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}

	var flash models.Flash
	if err = json.Unmarshal(payload, &flash); err != nil {
		return nil
	}

	return &flash
}
