package employee

import (
	"time"

	"hris-payroll/internal/department"
	"hris-payroll/internal/salarystructure"

	"github.com/google/uuid"
)

const (
	StatusActive     = "active"
	StatusInactive   = "inactive"
	StatusTerminated = "terminated"
)

type Employee struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FullName          string     `gorm:"size:255;not null"`
	Email             string     `gorm:"uniqueIndex"`
	EmploymentStatus  string     `gorm:"size:20;not null;default:'active';index"`
	DepartmentID      *uuid.UUID `gorm:"type:uuid"`
	SalaryStructureID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Department      *department.Department           `gorm:"foreignKey:DepartmentID"`
	SalaryStructure *salarystructure.SalaryStructure `gorm:"foreignKey:SalaryStructureID"`
}

func (Employee) TableName() string {
	return "employees"
}

// Eligible reports whether payroll should produce an entry for the employee.
func (e Employee) Eligible() bool {
	return e.EmploymentStatus == StatusActive && e.SalaryStructureID != nil
}
