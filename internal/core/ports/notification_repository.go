package ports

import (
	"context"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
)

// NotificationRepository defines persistence for delivered notifications.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
	// ListByUser returns notifications addressed to userID, newest first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
}
