package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobdeck/jobboard-api/internal/api/metrics"
	"github.com/jobdeck/jobboard-api/internal/core/domain"
	"github.com/jobdeck/jobboard-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, applicationID string, status domain.ApplicationStatus, ts time.Time) (bool, error)
	Mark(ctx context.Context, applicationID string, status domain.ApplicationStatus, ts time.Time) error
}

type notificationService struct {
	repo  ports.NotificationRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewNotificationService returns a NotificationService implementation.
func NewNotificationService(repo ports.NotificationRepository, dedup DedupChecker, log zerolog.Logger) ports.NotificationService {
	return &notificationService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single notification event. Delivery is
// best-effort: the enqueueing request has already succeeded, so failures are
// logged and counted but never propagated back to a client.
func (s *notificationService) Process(ctx context.Context, in ports.NotificationInput) error {
	isDup, err := s.dedup.IsDuplicate(ctx, in.ApplicationID, in.Status, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("application_id", in.ApplicationID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.NotificationsDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("application_id", in.ApplicationID).Str("status", string(in.Status)).Msg("duplicate notification skipped")
		return nil
	}
	metrics.NotificationsDedupTotal.WithLabelValues("miss").Inc()

	// Mark before writing so a crashed retry does not double-notify.
	if markErr := s.dedup.Mark(ctx, in.ApplicationID, in.Status, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("application_id", in.ApplicationID).Msg("failed to set dedup key")
	}

	n := &domain.Notification{
		UserID:        in.UserID,
		ApplicationID: in.ApplicationID,
		JobID:         in.JobID,
		Type:          in.Type,
		Status:        in.Status,
		Message:       notificationMessage(in),
		CreatedAt:     in.Timestamp,
	}

	if err := s.repo.Insert(ctx, n); err != nil {
		metrics.NotificationsErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("process notification: %w", err)
	}

	metrics.NotificationsProcessedTotal.WithLabelValues(string(in.Type)).Inc()
	s.log.Info().
		Str("application_id", in.ApplicationID).
		Str("type", string(in.Type)).
		Str("status", string(in.Status)).
		Msg("notification delivered")

	return nil
}

func (s *notificationService) ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func notificationMessage(in ports.NotificationInput) string {
	switch in.Type {
	case domain.NotificationApplicationReceived:
		return "Your application was received"
	case domain.NotificationStatusChanged:
		return fmt.Sprintf("Your application is now %s", in.Status)
	}
	return string(in.Type)
}
