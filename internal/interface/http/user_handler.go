package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/linkup-app/linkup-backend/internal/application"
	"github.com/linkup-app/linkup-backend/pkg/response"
)

// UserHandler serves the people search.
type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Search handles GET /api/users/all?q=
func (h *UserHandler) Search(c *gin.Context) {
	q := c.Query("q")

	users, err := h.Svc.Search(c.Request.Context(), q)
	if err != nil {
		h.Logger.WithError(err).WithField("q", q).Error("user search failed")
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	c.JSON(http.StatusOK, users)
}
