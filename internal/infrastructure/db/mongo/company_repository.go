package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
)

const companiesCollection = "companies"

type MongoCompanyRepository struct {
	coll *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *MongoCompanyRepository {
	return &MongoCompanyRepository{coll: db.Collection(companiesCollection)}
}

type mongoCompany struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Website     string             `bson:"website,omitempty"`
	Location    string             `bson:"location,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (r *MongoCompanyRepository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	doc := mongoCompany{
		Name:        company.Name,
		Description: company.Description,
		Website:     company.Website,
		Location:    company.Location,
		CreatedAt:   company.CreatedAt.Unix(),
		UpdatedAt:   company.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCompanyExists
		}
		return nil, fmt.Errorf("insert company: %w", err)
	}

	created := *company
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoCompanyRepository) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCompanyNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoCompanyRepository) FindByName(ctx context.Context, name string) (*domain.Company, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *MongoCompanyRepository) findOne(ctx context.Context, filter bson.M) (*domain.Company, error) {
	var mc mongoCompany
	if err := r.coll.FindOne(ctx, filter).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *MongoCompanyRepository) Update(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	oid, err := primitive.ObjectIDFromHex(company.ID)
	if err != nil {
		return nil, domain.ErrCompanyNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":        company.Name,
		"description": company.Description,
		"website":     company.Website,
		"location":    company.Location,
		"updated_at":  company.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCompanyNotFound
	}
	return company, nil
}

func (r *MongoCompanyRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCompanyNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

func (r *MongoCompanyRepository) List(ctx context.Context) ([]*domain.Company, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Company
	for cur.Next(ctx) {
		var mc mongoCompany
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode company: %w", err)
		}
		out = append(out, mc.toDomain())
	}
	return out, cur.Err()
}

func (mc mongoCompany) toDomain() *domain.Company {
	return &domain.Company{
		ID:          mc.ID.Hex(),
		Name:        mc.Name,
		Description: mc.Description,
		Website:     mc.Website,
		Location:    mc.Location,
		CreatedAt:   unixToTime(mc.CreatedAt),
		UpdatedAt:   unixToTime(mc.UpdatedAt),
	}
}
