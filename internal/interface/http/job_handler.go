package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linkup-app/linkup-backend/internal/application"
	"github.com/linkup-app/linkup-backend/internal/domain/repository"
	"github.com/linkup-app/linkup-backend/internal/interface/middleware"
	"github.com/linkup-app/linkup-backend/pkg/response"
)

// JobHandler serves the job board.
type JobHandler struct {
	Svc    *application.JobService
	Logger *logrus.Logger
}

func NewJobHandler(svc *application.JobService, logger *logrus.Logger) *JobHandler {
	return &JobHandler{Svc: svc, Logger: logger}
}

// List handles GET /api/jobs/all
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("job list failed")
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Get handles GET /api/jobs/:id
func (h *JobHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid job id")
		return
	}

	job, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Job not found")
			return
		}
		h.Logger.WithError(err).Error("job get failed")
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	c.JSON(http.StatusOK, job)
}

// Apply handles POST /api/jobs/apply/:id
func (h *JobHandler) Apply(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid job id")
		return
	}
	userID, err := primitive.ObjectIDFromHex(c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid token")
		return
	}

	if err := h.Svc.Apply(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Job not found")
			return
		}
		h.Logger.WithError(err).Error("job apply failed")
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, http.StatusOK, "Applied")
}
