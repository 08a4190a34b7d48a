package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"restaurant-bot/pkg/log"
)

// RequestID propagates X-Request-ID, generating one when absent, and attaches
// it to the request context for logging.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxClientIDLen {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
