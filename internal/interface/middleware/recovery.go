package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/linkup-app/linkup-backend/pkg/response"
)

// Recovery is the uniform error boundary: any panic in any handler becomes
// a generic 500 with no internal detail leaked to the client.
func Recovery(logger *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if logger != nil {
			logger.WithFields(logrus.Fields{
				"request_id": c.GetString("request_id"),
				"path":       c.Request.URL.Path,
				"panic":      recovered,
			}).Error("panic recovered")
		}
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
	})
}
