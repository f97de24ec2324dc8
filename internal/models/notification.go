package models

// Types de toast
const (
	NotifySuccess = "success"
	NotifyInfo    = "info"
	NotifyError   = "error"
)

// Notification est un toast éphémère : il s'auto-détruit après quelques
// secondes côté store.
type Notification struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}
