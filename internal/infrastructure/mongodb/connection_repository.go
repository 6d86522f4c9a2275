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

type ConnectionRepository struct {
	col *mongo.Collection
}

func NewConnectionRepository(db *mongo.Database) *ConnectionRepository {
	return &ConnectionRepository{col: db.Collection(ConnectionsCollection)}
}

func (r *ConnectionRepository) Create(ctx context.Context, req *entity.ConnectionRequest) error {
	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, req)
	if err != nil {
		// The unique (sender, receiver) index turns the concurrent
		// double-submit into a duplicate-key error here instead of a
		// second document.
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateRequest
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		req.ID = oid
	}
	return nil
}

func (r *ConnectionRepository) Exists(ctx context.Context, sender, receiver primitive.ObjectID) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"sender": sender, "receiver": receiver})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var _ repository.ConnectionRepository = (*ConnectionRepository)(nil)
