package app

import (
	"context"

	"hris-payroll/internal/attendance"
	"hris-payroll/internal/config"
	"hris-payroll/internal/deduction"
	"hris-payroll/internal/employee"
	"hris-payroll/internal/leave"
	"hris-payroll/internal/messaging/kafka"
	"hris-payroll/internal/payroll"
	"hris-payroll/internal/rbac"
	"hris-payroll/internal/rbac/infra"
	"hris-payroll/internal/salarystructure"

	"github.com/gin-gonic/gin"
)

func newPayrollService(in *resources, engine *deduction.Engine) payroll.Service {
	return payroll.NewService(in.sqlDB, payroll.NewRepository(in.gormDB), payroll.Dependencies{
		Employees:  employee.NewRepository(in.gormDB),
		Attendance: attendance.NewRepository(in.gormDB),
		Leaves:     leave.NewRepository(in.gormDB),
		Engine:     engine,
		Outbox:     kafka.NewOutboxRepository(in.sqlDB),
		Redis:      in.rdb,
	})
}

func registerModules(
	ctx context.Context,
	router *gin.Engine,
	cfg *config.Config,
	in *resources,
	engine *deduction.Engine,
) error {
	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer("")
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbac.NewRepository(in.gormDB), enforcer)
	if err := rbacService.LoadPolicy(ctx); err != nil {
		return err
	}

	// --- Services ---
	salaryStructureService := salarystructure.NewService(in.sqlDB, salarystructure.NewRepository(in.gormDB))
	payrollService := newPayrollService(in, engine)

	// --- Handlers ---
	salaryStructureHandler := salarystructure.NewHandler(salaryStructureService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, in.rdb)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		salarystructure.RegisterRoutes(api, salaryStructureHandler, rbacService, cfg.JWT.Secret)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, cfg.JWT.Secret, in.rdb)
		rbac.RegisterRoutes(api, rbacHandler, cfg.JWT.Secret)
	}

	return nil
}
