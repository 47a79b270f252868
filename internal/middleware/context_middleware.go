package middleware

import (
	"hris-payroll/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger puts a logger tagged with request_id and user_id on the
// request context so services can pick it up through contextutil.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	return func(c *gin.Context) {
		rid := c.GetString(contextutil.RequestIDKey())
		if rid == "" {
			rid = c.GetHeader(HeaderRequestID)
		}
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Header(HeaderRequestID, rid)

		uid := c.GetString("user_id_validated")
		if uid == "" {
			uid = c.GetString(ContextUserID)
		}

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("user_id", uid),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithUserID(ctx, uid)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
