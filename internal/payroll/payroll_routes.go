package payroll

import (
	"hris-payroll/internal/middleware"
	"hris-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	jwtSecret string,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payroll := r.Group("/payroll")
	payroll.Use(
		middleware.AuthMiddleware(jwtSecret),
		middleware.ExtractUserID(),
		middleware.ContextLogger(nil),
		middleware.RateLimitByUser(rate.Limit(10), 20),
	)
	{
		runs := payroll.Group("/runs")
		runs.GET("", handler.GetAllRuns)
		runs.GET("/:id", handler.GetRunByID)
		runs.GET("/:id/summary", handler.GetSummary)
		if redisClient != nil {
			runs.POST(
				"",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, rbac.ResourcePayrollRun, rbac.ActionCreate),
				handler.CreateRun,
			)
		} else {
			runs.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourcePayrollRun, rbac.ActionCreate), handler.CreateRun)
		}
		runs.POST("/:id/calculate", middleware.RBACAuthorize(rbacService, rbac.ResourcePayrollRun, rbac.ActionCalculate), handler.Calculate)
		runs.POST("/:id/approve", middleware.RBACAuthorize(rbacService, rbac.ResourcePayrollRun, rbac.ActionApprove), handler.Approve)
		runs.POST("/:id/process", middleware.RBACAuthorize(rbacService, rbac.ResourcePayrollRun, rbac.ActionProcess), handler.Process)
		runs.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourcePayrollRun, rbac.ActionDelete), handler.DeleteRun)

		entries := payroll.Group("/entries")
		entries.GET("/:id", handler.GetEntryByID)
		entries.PATCH("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourcePayrollEntry, rbac.ActionUpdate), handler.UpdateEntry)

		payroll.GET("/my-payslips", handler.GetMyPayslips)
	}
}
