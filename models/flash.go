package models

// Flash levels, mirrored by CSS classes in the templates.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Flash is a one-time notice shown on the next rendered page.
// It lives in a short-lived signed cookie and is cleared once read.
type Flash struct {
	Message string `json:"message"`
	Level   string `json:"level"`
}
