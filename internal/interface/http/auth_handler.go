package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/linkup-app/linkup-backend/internal/application"
	"github.com/linkup-app/linkup-backend/internal/domain/entity"
	"github.com/linkup-app/linkup-backend/pkg/response"
	"github.com/linkup-app/linkup-backend/pkg/validation"
)

// AuthHandler serves the public registration and login endpoints.
type AuthHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.UserService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required"`
	Bio      string   `json:"bio"`
	Skills   []string `json:"skills"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// Register handles POST /api/auth/user/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.WithField("details", validation.ToDetails(err)).Debug("register payload rejected")
		response.Error(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	u, token, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Bio:      req.Bio,
		Skills:   req.Skills,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Error(c, http.StatusBadRequest, "Email already registered")
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.JSON(http.StatusCreated, authResponse{Token: token, User: u})
}

// Login handles POST /api/auth/user/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.WithField("details", validation.ToDetails(err)).Debug("login payload rejected")
		response.Error(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	u, token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			// One message for unknown email and wrong password alike.
			response.Error(c, http.StatusBadRequest, "Invalid credentials")
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.JSON(http.StatusOK, authResponse{Token: token, User: u})
}
