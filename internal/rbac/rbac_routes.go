package rbac

import (
	"hris-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	group := r.Group("/rbac")
	group.Use(middleware.RateLimitByIP(20, 40), middleware.AuthMiddleware(jwtSecret))
	{
		group.POST("/enforce", handler.Enforce)
		group.GET("/permissions", handler.Permissions)
	}
}
