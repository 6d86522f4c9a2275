package response

import "github.com/gin-gonic/gin"

// Message is the body of every non-2xx response and of the few plain-ack
// endpoints. The public API speaks raw documents and arrays on success, so
// there is no envelope type here.
type Message struct {
	Message string `json:"message"`
}

// Error writes {"message": msg} with the given status and aborts the chain.
func Error(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Message{Message: msg})
}

// OK writes {"message": msg} with the given status.
func OK(c *gin.Context, status int, msg string) {
	c.JSON(status, Message{Message: msg})
}
