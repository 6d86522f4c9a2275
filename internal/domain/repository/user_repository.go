package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linkup-app/linkup-backend/internal/domain/entity"
)

// UserRepository defines the persistence operations for user accounts.
type UserRepository interface {
	// Create inserts the user and fills in ID/timestamps. A duplicate
	// email yields ErrDuplicateEmail.
	Create(ctx context.Context, u *entity.User) error
	// FindByID loads a user with the password hash projected out.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	// FindByEmail loads a user including the password hash (login path).
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// SearchByName returns users whose name contains q, case-insensitive,
	// password hashes projected out.
	SearchByName(ctx context.Context, q string) ([]entity.User, error)
}
