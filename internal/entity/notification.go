package entity

// Severity classifies a user-facing notification.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// Notification is a toast-style message emitted on fetch and mutation outcomes.
type Notification struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// InfoNotification builds an informational notification.
func InfoNotification(title, description string) Notification {
	return Notification{Title: title, Description: description, Severity: SeverityInfo}
}

// ErrorNotification builds an error notification.
func ErrorNotification(title, description string) Notification {
	return Notification{Title: title, Description: description, Severity: SeverityError}
}
