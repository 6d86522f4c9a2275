package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/linkup-app/linkup-backend/internal/interface/http"
)

// AuthModule mounts the two public endpoints. Everything else in the API
// sits behind the auth gate.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/user/register", m.Handler.Register)
	rg.POST("/auth/user/login", m.Handler.Login)
}
