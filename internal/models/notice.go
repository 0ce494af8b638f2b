package models

// Notice levels
const (
	NoticeInfo    = "info"
	NoticeWarning = "warning"
)

// Notice is a user-visible, non-fatal message surfaced by the narration
// controller (missing caption, exhausted playback fallback, etc).
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}
