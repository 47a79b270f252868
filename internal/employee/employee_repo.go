package employee

import (
	"context"
	"database/sql"

	"hris-payroll/internal/shared/connection"

	"gorm.io/gorm"
)

// Repository is the read side of the employee directory used by payroll.
//
//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindEligibleForPayroll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

// FindEligibleForPayroll returns active employees with a salary structure,
// structure preloaded, in a stable order.
func (r *repository) FindEligibleForPayroll(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Preload("SalaryStructure").
		Where("employment_status = ?", StatusActive).
		Where("salary_structure_id IS NOT NULL").
		Order("full_name ASC, id ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		Preload("SalaryStructure").
		First(&emp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}
