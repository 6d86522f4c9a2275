package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linkup-app/linkup-backend/internal/domain/entity"
)

// JobRepository persists job postings.
type JobRepository interface {
	// Create inserts the posting (used by the seeder; there is no HTTP
	// create endpoint).
	Create(ctx context.Context, j *entity.Job) error
	// FindAll returns all postings with CompanyName populated.
	FindAll(ctx context.Context) ([]entity.Job, error)
	// FindByID returns one posting with CompanyName populated, or
	// ErrNotFound.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Job, error)
	// AddApplicant adds the user to the posting's applicant set, once.
	// Unknown job yields ErrNotFound; re-applying is a no-op.
	AddApplicant(ctx context.Context, jobID, userID primitive.ObjectID) error
}
