package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/mymlak/mymlak/internal/types"
)

// RequestID attaches a request id to the context and echoes it back in the
// response headers. Incoming X-Request-ID values are reused.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = types.GenerateUUID()
		}

		ctx := types.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}
