package middleware

import (
	"hris-payroll/internal/domain"
	"hris-payroll/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService is anything that can answer an EnforceRequest.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if role == "" {
			abort(c, apperror.ErrUnauthorized, "missing auth context")
			return
		}

		req := domain.EnforceRequest{
			EmployeeID: c.GetString(ContextEmployeeID),
			Role:       role,
			Resource:   resource,
			Action:     action,
		}

		allowed, err := service.Enforce(req)
		if err != nil {
			zap.L().Named("middleware.rbac").Error("rbac enforce failed",
				zap.String("role", role),
				zap.String("resource", resource),
				zap.String("action", action),
				zap.Error(err),
			)
			abort(c, apperror.ErrInternal, nil)
			return
		}

		if !allowed {
			abort(c, apperror.ErrForbidden, map[string]string{"required": resource + ":" + action})
			return
		}
		c.Next()
	}
}
