package router

import (
	"github.com/linkup-app/linkup-backend/internal/application"
	"github.com/linkup-app/linkup-backend/internal/container"
	"github.com/linkup-app/linkup-backend/internal/infrastructure/mongodb"
	handlers "github.com/linkup-app/linkup-backend/internal/interface/http"
	"github.com/linkup-app/linkup-backend/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// adds them to the registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	db := container.GetMongo()
	logger := container.GetLogger()

	userRepo := mongodb.NewUserRepository(db)
	connRepo := mongodb.NewConnectionRepository(db)
	jobRepo := mongodb.NewJobRepository(db)

	userSvc := application.NewUserService(userRepo, container.GetTokens(), container.GetRabbitPub(), logger, cfg.AppName, cfg.MailSendEnabled)
	connSvc := application.NewConnectionService(connRepo, logger, cfg.ConnectionMutualDedup)
	jobSvc := application.NewJobService(jobRepo, container.GetRedis(), cfg.JobsCacheTTL, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(userSvc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), container.GetTokens(), userRepo))
	r.Add(modules.NewConnectionModule(handlers.NewConnectionHandler(connSvc, logger), container.GetTokens(), userRepo))
	r.Add(modules.NewJobModule(handlers.NewJobHandler(jobSvc, logger), container.GetTokens(), userRepo))
}
