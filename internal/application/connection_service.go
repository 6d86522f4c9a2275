package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linkup-app/linkup-backend/internal/domain/entity"
	"github.com/linkup-app/linkup-backend/internal/domain/repository"
)

var ErrDuplicateRequest = errors.New("connection request already sent")

// ConnectionService creates relationship requests between users. Accepting
// or rejecting a request is not exposed yet; documents carry the status
// field so the transition can ship without a data migration.
type ConnectionService struct {
	Repo   repository.ConnectionRepository
	Logger *logrus.Logger

	// MutualDedup also blocks a request whose inverse (receiver -> sender)
	// pair already exists. Off by default: A->B and B->A are distinct
	// requests.
	MutualDedup bool
}

func NewConnectionService(repo repository.ConnectionRepository, logger *logrus.Logger, mutualDedup bool) *ConnectionService {
	return &ConnectionService{Repo: repo, Logger: logger, MutualDedup: mutualDedup}
}

// Request creates a pending request from sender to receiver. The storage
// layer's unique index on the ordered pair is the duplicate guard, so two
// concurrent identical requests cannot both be written.
func (s *ConnectionService) Request(ctx context.Context, sender, receiver primitive.ObjectID) (*entity.ConnectionRequest, error) {
	if s.MutualDedup {
		exists, err := s.Repo.Exists(ctx, receiver, sender)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDuplicateRequest
		}
	}

	req := &entity.ConnectionRequest{
		Sender:   sender,
		Receiver: receiver,
		Status:   entity.ConnectionStatusPending,
	}
	if err := s.Repo.Create(ctx, req); err != nil {
		if errors.Is(err, repository.ErrDuplicateRequest) {
			return nil, ErrDuplicateRequest
		}
		return nil, err
	}
	return req, nil
}
