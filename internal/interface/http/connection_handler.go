package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linkup-app/linkup-backend/internal/application"
	"github.com/linkup-app/linkup-backend/internal/interface/middleware"
	"github.com/linkup-app/linkup-backend/pkg/response"
)

// ConnectionHandler serves the connection-request workflow.
type ConnectionHandler struct {
	Svc    *application.ConnectionService
	Logger *logrus.Logger
}

func NewConnectionHandler(svc *application.ConnectionService, logger *logrus.Logger) *ConnectionHandler {
	return &ConnectionHandler{Svc: svc, Logger: logger}
}

// Request handles POST /api/connections/request/:id where :id is the
// receiving user. The sender is the authenticated principal.
func (h *ConnectionHandler) Request(c *gin.Context) {
	receiver, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user id")
		return
	}
	sender, err := primitive.ObjectIDFromHex(c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid token")
		return
	}

	req, err := h.Svc.Request(c.Request.Context(), sender, receiver)
	if err != nil {
		if errors.Is(err, application.ErrDuplicateRequest) {
			response.Error(c, http.StatusBadRequest, "Already sent")
			return
		}
		h.Logger.WithError(err).Error("connection request failed")
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.JSON(http.StatusCreated, req)
}
