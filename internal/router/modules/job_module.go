package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/linkup-app/linkup-backend/internal/domain/repository"
	handlers "github.com/linkup-app/linkup-backend/internal/interface/http"
	"github.com/linkup-app/linkup-backend/internal/interface/middleware"
	"github.com/linkup-app/linkup-backend/pkg/helpers"
)

// JobModule mounts the protected job-board endpoints.
type JobModule struct {
	Handler *handlers.JobHandler
	Tokens  *helpers.TokenManager
	Users   repository.UserRepository
}

func NewJobModule(h *handlers.JobHandler, tokens *helpers.TokenManager, users repository.UserRepository) *JobModule {
	return &JobModule{Handler: h, Tokens: tokens, Users: users}
}

func (m *JobModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/jobs")
	auth.Use(middleware.Auth(m.Tokens, m.Users))
	{
		// "/all" before "/:id" so the static route wins
		auth.GET("/all", m.Handler.List)
		auth.GET("/:id", m.Handler.Get)
		auth.POST("/apply/:id", m.Handler.Apply)
	}
}
