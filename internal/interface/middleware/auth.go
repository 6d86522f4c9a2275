package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linkup-app/linkup-backend/internal/domain/repository"
	"github.com/linkup-app/linkup-backend/pkg/helpers"
	"github.com/linkup-app/linkup-backend/pkg/response"
)

// Context keys set by Auth on success.
const (
	CtxUserIDKey = "userID" // hex id from the verified token
	CtxUserKey   = "user"   // *entity.User, absent when the record is gone
)

const bearerPrefix = "Bearer "

// Auth is the gate in front of every protected route. It requires an
// "Authorization: Bearer <token>" header, verifies the signature, resolves
// the principal (password projected out) and passes control on with the
// principal in the gin context.
//
// A valid token whose user record has since been deleted still passes: the
// principal is simply absent from the context. Handlers that only need an
// identity use the token's user id.
func Auth(tokens *helpers.TokenManager, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			response.Error(c, http.StatusUnauthorized, "No token")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "No token")
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token")
			return
		}
		uid, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		u, err := users.FindByID(c.Request.Context(), uid)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusInternalServerError, "Something went wrong")
			return
		}

		c.Set(CtxUserIDKey, claims.UserID)
		if u != nil {
			c.Set(CtxUserKey, u)
		}
		c.Next()
	}
}
