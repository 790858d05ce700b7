package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
)

const notificationsCollection = "notifications"

type MongoNotificationRepository struct {
	coll *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *MongoNotificationRepository {
	return &MongoNotificationRepository{coll: db.Collection(notificationsCollection)}
}

type mongoNotification struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"user_id"`
	ApplicationID string             `bson:"application_id"`
	JobID         string             `bson:"job_id"`
	Type          string             `bson:"type"`
	Status        string             `bson:"status"`
	Message       string             `bson:"message"`
	CreatedAt     int64              `bson:"created_at"`
}

func (r *MongoNotificationRepository) Insert(ctx context.Context, n *domain.Notification) error {
	doc := mongoNotification{
		UserID:        n.UserID,
		ApplicationID: n.ApplicationID,
		JobID:         n.JobID,
		Type:          string(n.Type),
		Status:        string(n.Status),
		Message:       n.Message,
		CreatedAt:     n.CreatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (r *MongoNotificationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Notification
	for cur.Next(ctx) {
		var mn mongoNotification
		if err := cur.Decode(&mn); err != nil {
			return nil, fmt.Errorf("decode notification: %w", err)
		}
		out = append(out, &domain.Notification{
			ID:            mn.ID.Hex(),
			UserID:        mn.UserID,
			ApplicationID: mn.ApplicationID,
			JobID:         mn.JobID,
			Type:          domain.NotificationType(mn.Type),
			Status:        domain.ApplicationStatus(mn.Status),
			Message:       mn.Message,
			CreatedAt:     unixToTime(mn.CreatedAt),
		})
	}
	return out, cur.Err()
}
