package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
	"github.com/jobdeck/jobboard-api/internal/core/ports"
)

const jobsCollection = "jobs"

type MongoJobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *MongoJobRepository {
	return &MongoJobRepository{coll: db.Collection(jobsCollection)}
}

type mongoJob struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Title          string             `bson:"title"`
	Description    string             `bson:"description"`
	CompanyID      string             `bson:"company_id"`
	Location       string             `bson:"location,omitempty"`
	SalaryRange    string             `bson:"salary_range,omitempty"`
	SkillsRequired []string           `bson:"skills_required,omitempty"`
	Status         string             `bson:"status"`
	PostedAt       int64              `bson:"posted_at"`
	UpdatedAt      int64              `bson:"updated_at"`
}

func (r *MongoJobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	doc := mongoJob{
		Title:          job.Title,
		Description:    job.Description,
		CompanyID:      job.CompanyID,
		Location:       job.Location,
		SalaryRange:    job.SalaryRange,
		SkillsRequired: job.SkillsRequired,
		Status:         string(job.Status),
		PostedAt:       job.PostedAt.Unix(),
		UpdatedAt:      job.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	created := *job
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoJobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	var mj mongoJob
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mj); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return mj.toDomain(), nil
}

func (r *MongoJobRepository) Update(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(job.ID)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":           job.Title,
		"description":     job.Description,
		"location":        job.Location,
		"salary_range":    job.SalaryRange,
		"skills_required": job.SkillsRequired,
		"status":          string(job.Status),
		"updated_at":      job.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrJobNotFound
	}
	return job, nil
}

func (r *MongoJobRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrJobNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// List returns one page of jobs matching filter plus the total match count,
// newest postings first.
func (r *MongoJobRepository) List(ctx context.Context, filter ports.ListJobsFilter) ([]*domain.Job, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Location != "" {
		query["location"] = filter.Location
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"skills_required": pattern},
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "posted_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Job
	for cur.Next(ctx) {
		var mj mongoJob
		if err := cur.Decode(&mj); err != nil {
			return nil, 0, fmt.Errorf("decode job: %w", err)
		}
		out = append(out, mj.toDomain())
	}
	return out, total, cur.Err()
}

func (mj mongoJob) toDomain() *domain.Job {
	return &domain.Job{
		ID:             mj.ID.Hex(),
		Title:          mj.Title,
		Description:    mj.Description,
		CompanyID:      mj.CompanyID,
		Location:       mj.Location,
		SalaryRange:    mj.SalaryRange,
		SkillsRequired: mj.SkillsRequired,
		Status:         domain.JobStatus(mj.Status),
		PostedAt:       unixToTime(mj.PostedAt),
		UpdatedAt:      unixToTime(mj.UpdatedAt),
	}
}
