package ports

import (
	"context"
	"time"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
)

// NotificationInput is a single notification event flowing through the
// async dispatcher.
type NotificationInput struct {
	UserID        string
	ApplicationID string
	JobID         string
	Type          domain.NotificationType
	Status        domain.ApplicationStatus
	Timestamp     time.Time
}

// NotificationService processes queued notification events and serves reads.
type NotificationService interface {
	Process(ctx context.Context, in NotificationInput) error
	ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error)
}
