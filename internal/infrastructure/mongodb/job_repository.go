package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linkup-app/linkup-backend/internal/domain/entity"
	"github.com/linkup-app/linkup-backend/internal/domain/repository"
)

type JobRepository struct {
	col *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{col: db.Collection(JobsCollection)}
}

func (r *JobRepository) Create(ctx context.Context, j *entity.Job) error {
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, j)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		j.ID = oid
	}
	return nil
}

// companyLookup joins the posting's company user and projects its display
// name into companyName.
func companyLookup() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         UsersCollection,
			"localField":   "company",
			"foreignField": "_id",
			"as":           "companyDoc",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"companyName": bson.M{"$first": "$companyDoc.name"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{"companyDoc": 0}}},
	}
}

func (r *JobRepository) FindAll(ctx context.Context) ([]entity.Job, error) {
	cur, err := r.col.Aggregate(ctx, companyLookup())
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	jobs := []entity.Job{}
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Job, error) {
	pipeline := append(mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": id}}},
	}, companyLookup()...)

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	jobs := []entity.Job{}
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, repository.ErrNotFound
	}
	return &jobs[0], nil
}

func (r *JobRepository) AddApplicant(ctx context.Context, jobID, userID primitive.ObjectID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": jobID},
		bson.M{
			"$addToSet": bson.M{"applicants": userID},
			"$set":      bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.JobRepository = (*JobRepository)(nil)
