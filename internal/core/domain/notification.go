package domain

import "time"

// NotificationType identifies what a notification is about.
type NotificationType string

const (
	NotificationApplicationReceived NotificationType = "application_received"
	NotificationStatusChanged       NotificationType = "status_changed"
)

// Notification is an asynchronous message produced when an application is
// submitted or moves to a new review state.
type Notification struct {
	ID            string            `json:"id"`
	UserID        string            `json:"user_id"`
	ApplicationID string            `json:"application_id"`
	JobID         string            `json:"job_id"`
	Type          NotificationType  `json:"type"`
	Status        ApplicationStatus `json:"status"`
	Message       string            `json:"message"`
	CreatedAt     time.Time         `json:"created_at"`
}
