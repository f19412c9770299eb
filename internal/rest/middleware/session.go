package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/mymlak/mymlak/internal/domain/session"
	"github.com/mymlak/mymlak/internal/types"
)

// SessionContext resolves the stored session, if any, and puts the user's
// phone on the request context. It never rejects: endpoints that require an
// identity enforce that themselves.
func SessionContext(sessionRepo session.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if sess, err := sessionRepo.Get(ctx); err == nil {
			c.Request = c.Request.WithContext(types.WithUserPhone(ctx, sess.Phone))
		}

		c.Next()
	}
}
