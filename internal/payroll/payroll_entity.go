package payroll

import (
	"time"

	"hris-payroll/internal/employee"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayrollRun struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Month       int        `gorm:"not null;uniqueIndex:uq_payroll_run_period"`
	Year        int        `gorm:"not null;uniqueIndex:uq_payroll_run_period"`
	Status      RunStatus  `gorm:"type:varchar(20);not null;default:'draft';index"`
	Version     int64      `gorm:"not null;default:1"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid"`
	ApprovedBy  *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt  *time.Time
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	EntryCount int64 `gorm:"column:entry_count;->;-:migration"`
}

func (PayrollRun) TableName() string {
	return "payroll_runs"
}

// Deductions holds every amount withheld from an entry's gross pay.
type Deductions struct {
	Lop decimal.Decimal `gorm:"column:lop;type:numeric(14,2);not null"`
	PF  decimal.Decimal `gorm:"column:pf;type:numeric(14,2);not null"`
	ESI decimal.Decimal `gorm:"column:esi;type:numeric(14,2);not null"`
	PT  decimal.Decimal `gorm:"column:pt;type:numeric(14,2);not null"`
	TDS decimal.Decimal `gorm:"column:tds;type:numeric(14,2);not null"`
}

func (d Deductions) Total() decimal.Decimal {
	return d.Lop.Add(d.PF).Add(d.ESI).Add(d.PT).Add(d.TDS)
}

type PayrollEntry struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PayrollRunID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_entry_employee"`
	EmployeeID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_entry_employee;index"`
	GrossSalary     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	LopDays         int             `gorm:"not null"`
	LopOverridden   bool            `gorm:"not null;default:false"`
	Deductions      Deductions      `gorm:"embedded;embeddedPrefix:deduction_"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	NetSalary       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Notes           *string         `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Run      *PayrollRun        `gorm:"foreignKey:PayrollRunID"`
	Employee *employee.Employee `gorm:"foreignKey:EmployeeID"`
}

func (PayrollEntry) TableName() string {
	return "payroll_entries"
}

// DepartmentSummaryRow aggregates one run's entries for a department.
type DepartmentSummaryRow struct {
	Department      string
	EmployeeCount   int64
	GrossSalary     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
}

type RunFilter struct {
	Status RunStatus
	Year   int
}
