package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linkup-app/linkup-backend/internal/application"
	"github.com/linkup-app/linkup-backend/internal/domain/entity"
	"github.com/linkup-app/linkup-backend/internal/domain/repository"
	handlers "github.com/linkup-app/linkup-backend/internal/interface/http"
	"github.com/linkup-app/linkup-backend/internal/router"
	"github.com/linkup-app/linkup-backend/internal/router/modules"
	"github.com/linkup-app/linkup-backend/pkg/helpers"
	"github.com/linkup-app/linkup-backend/pkg/validation"
)

// In-memory repositories with the same guard semantics as the Mongo layer.

type memUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*entity.User
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.Email == u.Email {
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

func (r *memUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	cp.Password = ""
	return &cp, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
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

func (r *memUserRepo) SearchByName(_ context.Context, q string) ([]entity.User, error) {
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

type memConnRepo struct {
	mu       sync.Mutex
	requests map[string]*entity.ConnectionRequest
}

func (r *memConnRepo) Create(_ context.Context, req *entity.ConnectionRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := req.Sender.Hex() + ":" + req.Receiver.Hex()
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

func (r *memConnRepo) Exists(_ context.Context, sender, receiver primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.requests[sender.Hex()+":"+receiver.Hex()]
	return ok, nil
}

type memJobRepo struct {
	mu   sync.Mutex
	jobs map[primitive.ObjectID]*entity.Job
}

func (r *memJobRepo) Create(_ context.Context, j *entity.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.ID = primitive.NewObjectID()
	cp := *j
	r.jobs[j.ID] = &cp
	return nil
}

func (r *memJobRepo) FindAll(_ context.Context) ([]entity.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Job{}
	for _, j := range r.jobs {
		out = append(out, *j)
	}
	return out, nil
}

func (r *memJobRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *memJobRepo) AddApplicant(_ context.Context, jobID, userID primitive.ObjectID) error {
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

type testAPI struct {
	engine *gin.Engine
	users  *memUserRepo
	jobs   *memJobRepo
	tokens *helpers.TokenManager
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	users := &memUserRepo{users: map[primitive.ObjectID]*entity.User{}}
	conns := &memConnRepo{requests: map[string]*entity.ConnectionRequest{}}
	jobs := &memJobRepo{jobs: map[primitive.ObjectID]*entity.Job{}}
	tokens := helpers.NewTokenManager("test-secret")

	userSvc := application.NewUserService(users, tokens, nil, logger, "linkup-test", false)
	connSvc := application.NewConnectionService(conns, logger, false)
	jobSvc := application.NewJobService(jobs, nil, time.Minute, logger)

	r := gin.New()
	reg := router.NewRegistry(r)
	reg.Add(modules.NewAuthModule(handlers.NewAuthHandler(userSvc, logger)))
	reg.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), tokens, users))
	reg.Add(modules.NewConnectionModule(handlers.NewConnectionHandler(connSvc, logger), tokens, users))
	reg.Add(modules.NewJobModule(handlers.NewJobHandler(jobSvc, logger), tokens, users))
	reg.RegisterAll()

	return &testAPI{engine: r, users: users, jobs: jobs, tokens: tokens}
}

func (a *testAPI) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

type authBody struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

func (a *testAPI) register(t *testing.T, name, email, password string) authBody {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/auth/user/register", "",
		`{"name":"`+name+`","email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var out authBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out
}

func TestRegisterLoginFlow(t *testing.T) {
	api := newTestAPI(t)

	alice := api.register(t, "alice", "alice@x.com", "pw1")
	claims, err := api.tokens.Parse(alice.Token)
	require.NoError(t, err)
	require.Equal(t, alice.User.ID.Hex(), claims.UserID)

	// Duplicate email is a conflict.
	w := api.do(t, http.MethodPost, "/api/auth/user/register", "",
		`{"name":"alice again","email":"alice@x.com","password":"pw2"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"message":"Email already registered"}`, w.Body.String())

	// Bad payload never reaches the service.
	w = api.do(t, http.MethodPost, "/api/auth/user/register", "", `{"name":"x"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Login with the right password returns a token for the same user.
	w = api.do(t, http.MethodPost, "/api/auth/user/login", "",
		`{"email":"alice@x.com","password":"pw1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var in authBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &in))
	claims, err = api.tokens.Parse(in.Token)
	require.NoError(t, err)
	require.Equal(t, alice.User.ID.Hex(), claims.UserID)

	// Wrong password and unknown email are indistinguishable.
	for _, body := range []string{
		`{"email":"alice@x.com","password":"nope"}`,
		`{"email":"ghost@x.com","password":"pw1"}`,
	} {
		w = api.do(t, http.MethodPost, "/api/auth/user/login", "", body)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.JSONEq(t, `{"message":"Invalid credentials"}`, w.Body.String())
	}
}

func TestUserSearch(t *testing.T) {
	api := newTestAPI(t)

	alice := api.register(t, "alice", "alice@x.com", "pw1")
	api.register(t, "bob", "bob@x.com", "pw2")

	// Protected: no header is rejected before the handler.
	w := api.do(t, http.MethodGet, "/api/users/all?q=ali", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"message":"No token"}`, w.Body.String())

	w = api.do(t, http.MethodGet, "/api/users/all?q=ali", alice.Token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var users []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	require.Equal(t, "alice", users[0]["name"])
	require.NotContains(t, users[0], "password", "hash must never serialize")
}

func TestConnectionRequestFlow(t *testing.T) {
	api := newTestAPI(t)

	alice := api.register(t, "alice", "alice@x.com", "pw1")
	bob := api.register(t, "bob", "bob@x.com", "pw2")

	path := "/api/connections/request/" + bob.User.ID.Hex()

	w := api.do(t, http.MethodPost, path, alice.Token, "")
	require.Equal(t, http.StatusCreated, w.Code)
	var req entity.ConnectionRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &req))
	require.Equal(t, entity.ConnectionStatusPending, req.Status)
	require.Equal(t, alice.User.ID, req.Sender)
	require.Equal(t, bob.User.ID, req.Receiver)

	// Identical second request is a conflict.
	w = api.do(t, http.MethodPost, path, alice.Token, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"message":"Already sent"}`, w.Body.String())

	// The inverse direction is its own pair.
	w = api.do(t, http.MethodPost, "/api/connections/request/"+alice.User.ID.Hex(), bob.Token, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// Garbage receiver id.
	w = api.do(t, http.MethodPost, "/api/connections/request/not-an-id", alice.Token, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"message":"Invalid user id"}`, w.Body.String())
}

func TestJobBoard(t *testing.T) {
	api := newTestAPI(t)

	alice := api.register(t, "alice", "alice@x.com", "pw1")

	job := &entity.Job{
		Company:     primitive.NewObjectID(),
		CompanyName: "Acme Robotics",
		Title:       "Backend Engineer",
	}
	require.NoError(t, api.jobs.Create(context.Background(), job))

	// All job routes sit behind the gate.
	for _, probe := range []struct{ method, path string }{
		{http.MethodGet, "/api/jobs/all"},
		{http.MethodGet, "/api/jobs/" + job.ID.Hex()},
		{http.MethodPost, "/api/jobs/apply/" + job.ID.Hex()},
	} {
		w := api.do(t, probe.method, probe.path, "", "")
		require.Equal(t, http.StatusUnauthorized, w.Code, probe.path)
	}

	w := api.do(t, http.MethodGet, "/api/jobs/all", alice.Token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var jobs []entity.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
	require.Len(t, jobs, 1)
	require.Equal(t, "Acme Robotics", jobs[0].CompanyName)

	w = api.do(t, http.MethodGet, "/api/jobs/"+job.ID.Hex(), alice.Token, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodGet, "/api/jobs/"+primitive.NewObjectID().Hex(), alice.Token, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"message":"Job not found"}`, w.Body.String())

	w = api.do(t, http.MethodPost, "/api/jobs/apply/"+job.ID.Hex(), alice.Token, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Applied"}`, w.Body.String())

	got, err := api.jobs.FindByID(context.Background(), job.ID)
	require.NoError(t, err)
	require.Equal(t, []primitive.ObjectID{alice.User.ID}, got.Applicants)
}

func TestForeignSecretTokenRejected(t *testing.T) {
	api := newTestAPI(t)
	api.register(t, "alice", "alice@x.com", "pw1")

	foreign, err := helpers.NewTokenManager("other-secret").Generate(primitive.NewObjectID().Hex())
	require.NoError(t, err)

	w := api.do(t, http.MethodGet, "/api/users/all?q=ali", foreign, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"message":"Invalid token"}`, w.Body.String())
}
