package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/linkup-app/linkup-backend/internal/domain/repository"
	handlers "github.com/linkup-app/linkup-backend/internal/interface/http"
	"github.com/linkup-app/linkup-backend/internal/interface/middleware"
	"github.com/linkup-app/linkup-backend/pkg/helpers"
)

// ConnectionModule mounts the protected connection-request endpoint.
type ConnectionModule struct {
	Handler *handlers.ConnectionHandler
	Tokens  *helpers.TokenManager
	Users   repository.UserRepository
}

func NewConnectionModule(h *handlers.ConnectionHandler, tokens *helpers.TokenManager, users repository.UserRepository) *ConnectionModule {
	return &ConnectionModule{Handler: h, Tokens: tokens, Users: users}
}

func (m *ConnectionModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/connections")
	auth.Use(middleware.Auth(m.Tokens, m.Users))
	{
		auth.POST("/request/:id", m.Handler.Request)
	}
}
