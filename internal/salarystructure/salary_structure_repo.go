package salarystructure

import (
	"context"
	"database/sql"

	"hris-payroll/internal/shared/connection"

	"gorm.io/gorm"
)

const employeeCountSelect = "salary_structures.*, " +
	"(SELECT COUNT(*) FROM employees WHERE employees.salary_structure_id = salary_structures.id) AS employee_count"

//go:generate mockgen -source=salary_structure_repo.go -destination=mock/salary_structure_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *SalaryStructure) error
	FindAll(ctx context.Context) ([]SalaryStructure, error)
	FindByID(ctx context.Context, id string) (*SalaryStructure, error)
	ExistsByName(ctx context.Context, name string, excludeID string) (bool, error)
	Update(ctx context.Context, s *SalaryStructure) error
	Delete(ctx context.Context, id string) error
	CountAssignedEmployees(ctx context.Context, id string) (int64, error)
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

func (r *repository) Create(ctx context.Context, s *SalaryStructure) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAll(ctx context.Context) ([]SalaryStructure, error) {
	var structures []SalaryStructure
	err := r.db.WithContext(ctx).
		Select(employeeCountSelect).
		Order("salary_structures.name ASC").
		Find(&structures).Error
	return structures, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*SalaryStructure, error) {
	var s SalaryStructure
	err := r.db.WithContext(ctx).
		Select(employeeCountSelect).
		Where("salary_structures.id = ?", id).
		First(&s).Error
	return &s, err
}

func (r *repository) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&SalaryStructure{}).
		Where("name = ?", name)
	if excludeID != "" {
		db = db.Where("id <> ?", excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, s *SalaryStructure) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&SalaryStructure{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountAssignedEmployees reads the employee directory table directly.
func (r *repository) CountAssignedEmployees(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("salary_structure_id = ?", id).
		Count(&count).Error
	return count, err
}
