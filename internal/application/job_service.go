package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linkup-app/linkup-backend/internal/domain/entity"
	"github.com/linkup-app/linkup-backend/internal/domain/repository"
	"github.com/linkup-app/linkup-backend/pkg/helpers"
)

const jobsListCacheKey = "jobs:all"

// JobService serves the job board. The full listing is cached in Redis
// with a short TTL; the cache is best-effort and the service works the
// same with Redis absent.
type JobService struct {
	Repo     repository.JobRepository
	Redis    *redis.Client
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewJobService(repo repository.JobRepository, rdb *redis.Client, cacheTTL time.Duration, logger *logrus.Logger) *JobService {
	return &JobService{Repo: repo, Redis: rdb, CacheTTL: cacheTTL, Logger: logger}
}

func (s *JobService) List(ctx context.Context) ([]entity.Job, error) {
	if s.Redis != nil {
		var cached []entity.Job
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, jobsListCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	jobs, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, jobsListCacheKey, jobs, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("jobs list cache write failed")
		}
	}
	return jobs, nil
}

func (s *JobService) Get(ctx context.Context, id primitive.ObjectID) (*entity.Job, error) {
	return s.Repo.FindByID(ctx, id)
}

// Apply adds the user to the posting's applicant set and drops the stale
// list cache.
func (s *JobService) Apply(ctx context.Context, jobID, userID primitive.ObjectID) error {
	if err := s.Repo.AddApplicant(ctx, jobID, userID); err != nil {
		return err
	}
	if s.Redis != nil {
		if err := helpers.RedisDel(ctx, s.Redis, jobsListCacheKey); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("jobs list cache invalidation failed")
		}
	}
	return nil
}

// Create inserts a posting. Only the seeder calls this today.
func (s *JobService) Create(ctx context.Context, j *entity.Job) error {
	if err := s.Repo.Create(ctx, j); err != nil {
		return err
	}
	if s.Redis != nil {
		_ = helpers.RedisDel(ctx, s.Redis, jobsListCacheKey)
	}
	return nil
}
