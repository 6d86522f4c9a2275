package application

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linkup-app/linkup-backend/internal/domain/entity"
	"github.com/linkup-app/linkup-backend/internal/domain/repository"
)

// In-memory repository fakes mirroring the store's guard semantics (unique
// email, unique ordered connection pair, add-to-set applicants).

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	cp.Password = "" // projection drops the hash
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) SearchByName(_ context.Context, q string) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.User{}
	for _, u := range r.users {
		if strings.Contains(strings.ToLower(u.Name), strings.ToLower(q)) {
			cp := *u
			cp.Password = ""
			out = append(out, cp)
		}
	}
	return out, nil
}

type fakeConnectionRepo struct {
	mu       sync.Mutex
	requests map[string]*entity.ConnectionRequest
}

func newFakeConnectionRepo() *fakeConnectionRepo {
	return &fakeConnectionRepo{requests: map[string]*entity.ConnectionRequest{}}
}

func pairKey(sender, receiver primitive.ObjectID) string {
	return sender.Hex() + ":" + receiver.Hex()
}

func (r *fakeConnectionRepo) Create(_ context.Context, req *entity.ConnectionRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey(req.Sender, req.Receiver)
	if _, ok := r.requests[key]; ok {
		return repository.ErrDuplicateRequest
	}
	req.ID = primitive.NewObjectID()
	req.CreatedAt = time.Now().UTC()
	req.UpdatedAt = req.CreatedAt
	cp := *req
	r.requests[key] = &cp
	return nil
}

func (r *fakeConnectionRepo) Exists(_ context.Context, sender, receiver primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.requests[pairKey(sender, receiver)]
	return ok, nil
}

func (r *fakeConnectionRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[primitive.ObjectID]*entity.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[primitive.ObjectID]*entity.Job{}}
}

func (r *fakeJobRepo) Create(_ context.Context, j *entity.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.ID = primitive.NewObjectID()
	j.CreatedAt = time.Now().UTC()
	j.UpdatedAt = j.CreatedAt
	cp := *j
	r.jobs[j.ID] = &cp
	return nil
}

func (r *fakeJobRepo) FindAll(_ context.Context) ([]entity.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Job{}
	for _, j := range r.jobs {
		out = append(out, *j)
	}
	return out, nil
}

func (r *fakeJobRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJobRepo) AddApplicant(_ context.Context, jobID, userID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[jobID]
	if !ok {
		return repository.ErrNotFound
	}
	for _, a := range j.Applicants {
		if a == userID {
			return nil
		}
	}
	j.Applicants = append(j.Applicants, userID)
	return nil
}

var (
	_ repository.UserRepository       = (*fakeUserRepo)(nil)
	_ repository.ConnectionRepository = (*fakeConnectionRepo)(nil)
	_ repository.JobRepository        = (*fakeJobRepo)(nil)
)
