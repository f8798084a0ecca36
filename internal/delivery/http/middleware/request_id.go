package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with a v4 UUID for log correlation. The
// response body shape is fixed, so the ID travels in a header only.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("RequestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
