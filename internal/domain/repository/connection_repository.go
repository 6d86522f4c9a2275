package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linkup-app/linkup-backend/internal/domain/entity"
)

// ConnectionRepository persists connection requests.
type ConnectionRepository interface {
	// Create inserts the request. The unique (sender, receiver) index makes
	// the insert itself the duplicate guard: a second request for the same
	// ordered pair yields ErrDuplicateRequest, whatever its status.
	Create(ctx context.Context, req *entity.ConnectionRequest) error
	// Exists reports whether a request for the exact ordered pair exists.
	Exists(ctx context.Context, sender, receiver primitive.ObjectID) (bool, error)
}
