package app

import (
	"context"
	"database/sql"
	"net/http"

	"hris-payroll/internal/attendance"
	"hris-payroll/internal/config"
	"hris-payroll/internal/deduction"
	"hris-payroll/internal/department"
	"hris-payroll/internal/employee"
	"hris-payroll/internal/leave"
	"hris-payroll/internal/messaging/kafka"
	"hris-payroll/internal/payroll"
	"hris-payroll/internal/rbac"
	"hris-payroll/internal/salarystructure"
	"hris-payroll/internal/shared/connection"
	"hris-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// resources is the set of connections a process owns.
type resources struct {
	gormDB *gorm.DB
	sqlDB  *sql.DB
	rdb    *redis.Client
}

func (i *resources) Close() {
	if i.rdb != nil {
		_ = i.rdb.Close()
	}
	if i.sqlDB != nil {
		_ = i.sqlDB.Close()
	}
}

func connectDatabase(cfg *config.Config) (*resources, error) {
	gormDB, err := connection.ConnectGORMWithRetry(connection.PostgresConfig{
		Host:     cfg.Database.Host,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Name:     cfg.Database.Name,
		Port:     cfg.Database.Port,
		SSLMode:  cfg.Database.SSLMode,
	}, cfg.Database.MaxRetries)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	return &resources{gormDB: gormDB, sqlDB: sqlDB}, nil
}

// migrate creates the tables this service reads and writes. Attendance,
// leave, employee and department rows are owned upstream; their tables are
// migrated here so a fresh database is usable.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&department.Department{},
		&salarystructure.SalaryStructure{},
		&employee.Employee{},
		&attendance.Attendance{},
		&leave.Leave{},
		&payroll.PayrollRun{},
		&payroll.PayrollEntry{},
		&kafka.OutboxEventRecord{},
		&rbac.RolePermission{},
	)
}

func loadEngine(cfg *config.Config) (*deduction.Engine, error) {
	schedule, err := deduction.LoadSchedule(cfg.Payroll.RulesFile)
	if err != nil {
		return nil, err
	}
	return deduction.NewEngine(schedule), nil
}

// BuildApp connects infrastructure, registers every module on router and
// returns a cleanup func for the connections.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L().Named("app")

	if err := cfg.ValidateHTTP(); err != nil {
		return nil, err
	}

	in, err := connectDatabase(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := migrate(in.gormDB); err != nil {
			in.Close()
			return nil, err
		}
		logger.Info("database migrated")
	}

	in.rdb, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.MaxRetries)
	if err != nil {
		in.Close()
		return nil, err
	}

	engine, err := loadEngine(cfg)
	if err != nil {
		in.Close()
		return nil, err
	}

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})

	if err := registerModules(context.Background(), router, cfg, in, engine); err != nil {
		in.Close()
		return nil, err
	}

	return in.Close, nil
}
