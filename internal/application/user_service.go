package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/linkup-app/linkup-backend/internal/domain/entity"
	"github.com/linkup-app/linkup-backend/internal/domain/repository"
	"github.com/linkup-app/linkup-backend/pkg/helpers"
	"github.com/linkup-app/linkup-backend/pkg/mailer"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserService owns registration, login and the people search.
type UserService struct {
	Repo        repository.UserRepository
	Tokens      *helpers.TokenManager
	Pub         *helpers.RabbitPublisher
	Logger      *logrus.Logger
	AppName     string
	MailEnabled bool
}

func NewUserService(repo repository.UserRepository, tokens *helpers.TokenManager, pub *helpers.RabbitPublisher, logger *logrus.Logger, appName string, mailEnabled bool) *UserService {
	return &UserService{Repo: repo, Tokens: tokens, Pub: pub, Logger: logger, AppName: appName, MailEnabled: mailEnabled}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Bio      string
	Skills   []string
}

// Register creates the account and issues its first token. The welcome
// email is queued best-effort; a broker outage never fails registration.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, string, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}
	u := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Bio:      in.Bio,
		Skills:   in.Skills,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.Tokens.Generate(u.ID.Hex())
	if err != nil {
		return nil, "", err
	}

	if s.Pub != nil && s.MailEnabled {
		job := mailer.EmailJob{
			To:       u.Email,
			Template: mailer.TemplateWelcome,
			Data:     map[string]any{"Name": u.Name, "Email": u.Email, "AppName": s.AppName},
		}
		if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Warn("welcome email publish failed")
		}
	}

	u.Password = ""
	return u, token, nil
}

// Login validates credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, "", ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.Tokens.Generate(u.ID.Hex())
	if err != nil {
		return nil, "", err
	}
	u.Password = ""
	return u, token, nil
}

// Search returns users whose name contains q, case-insensitive.
func (s *UserService) Search(ctx context.Context, q string) ([]entity.User, error) {
	return s.Repo.SearchByName(ctx, q)
}
