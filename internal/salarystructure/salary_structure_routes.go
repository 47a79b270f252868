package salarystructure

import (
	"hris-payroll/internal/middleware"
	"hris-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	jwtSecret string,
) {
	structures := r.Group("/payroll/structures")
	structures.Use(
		middleware.AuthMiddleware(jwtSecret),
		middleware.ExtractUserID(),
		middleware.ContextLogger(nil),
		middleware.RateLimitByUser(rate.Limit(10), 20),
	)
	{
		structures.GET("", handler.GetAll)
		structures.GET("/:id", handler.GetByID)
		structures.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceSalaryStructure, rbac.ActionCreate), handler.Create)
		structures.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceSalaryStructure, rbac.ActionUpdate), handler.Update)
		structures.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceSalaryStructure, rbac.ActionDelete), handler.Delete)
	}
}
