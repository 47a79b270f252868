package middleware

import (
	"github.com/gin-gonic/gin"
)

// ExtractUserID re-checks the authenticated user id and stores it as
// user_id_validated for idempotency and request logging.
func ExtractUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(ContextUserID)
		if !exists {
			abort(c, ErrTokenNotFound, nil)
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			abort(c, ErrInvalidToken, "user_id has an invalid format")
			return
		}

		c.Set("user_id_validated", userIDStr)
		c.Next()
	}
}
