package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/linkup-app/linkup-backend/internal/domain/repository"
	handlers "github.com/linkup-app/linkup-backend/internal/interface/http"
	"github.com/linkup-app/linkup-backend/internal/interface/middleware"
	"github.com/linkup-app/linkup-backend/pkg/helpers"
)

// UserModule mounts the protected people-search endpoint.
type UserModule struct {
	Handler *handlers.UserHandler
	Tokens  *helpers.TokenManager
	Users   repository.UserRepository
}

func NewUserModule(h *handlers.UserHandler, tokens *helpers.TokenManager, users repository.UserRepository) *UserModule {
	return &UserModule{Handler: h, Tokens: tokens, Users: users}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/users")
	auth.Use(middleware.Auth(m.Tokens, m.Users))
	{
		auth.GET("/all", m.Handler.Search)
	}
}
