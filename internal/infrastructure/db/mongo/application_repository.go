package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
)

const applicationsCollection = "applications"

type MongoApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *MongoApplicationRepository {
	return &MongoApplicationRepository{coll: db.Collection(applicationsCollection)}
}

type mongoApplication struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	JobID       string             `bson:"job_id"`
	UserID      string             `bson:"user_id"`
	ResumeURL   string             `bson:"resume_url,omitempty"`
	CoverLetter string             `bson:"cover_letter,omitempty"`
	Status      string             `bson:"status"`
	AppliedAt   int64              `bson:"applied_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (r *MongoApplicationRepository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	doc := mongoApplication{
		JobID:       app.JobID,
		UserID:      app.UserID,
		ResumeURL:   app.ResumeURL,
		CoverLetter: app.CoverLetter,
		Status:      string(app.Status),
		AppliedAt:   app.AppliedAt.Unix(),
		UpdatedAt:   app.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateApplication
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}

	created := *app
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoApplicationRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	var ma mongoApplication
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *MongoApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC().Unix(),
	}}

	var ma mongoApplication
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("update application status: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *MongoApplicationRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrApplicationNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func (r *MongoApplicationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Application, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *MongoApplicationRepository) ListAll(ctx context.Context) ([]*domain.Application, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoApplicationRepository) list(ctx context.Context, query bson.M) ([]*domain.Application, error) {
	opts := options.Find().SetSort(bson.D{{Key: "applied_at", Value: -1}})
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Application
	for cur.Next(ctx) {
		var ma mongoApplication
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		out = append(out, ma.toDomain())
	}
	return out, cur.Err()
}

func (ma mongoApplication) toDomain() *domain.Application {
	return &domain.Application{
		ID:          ma.ID.Hex(),
		JobID:       ma.JobID,
		UserID:      ma.UserID,
		ResumeURL:   ma.ResumeURL,
		CoverLetter: ma.CoverLetter,
		Status:      domain.ApplicationStatus(ma.Status),
		AppliedAt:   unixToTime(ma.AppliedAt),
		UpdatedAt:   unixToTime(ma.UpdatedAt),
	}
}
