package salarystructure

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SalaryStructure struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name        string    `gorm:"column:name;type:varchar(120);not null;uniqueIndex:uq_salary_structure_name"`
	Description *string   `gorm:"column:description;type:text"`

	// Earnings, monthly.
	Basic            decimal.Decimal `gorm:"column:basic;type:numeric(14,2);not null"`
	HRA              decimal.Decimal `gorm:"column:hra;type:numeric(14,2);not null"`
	Conveyance       decimal.Decimal `gorm:"column:conveyance;type:numeric(14,2);not null"`
	MedicalAllowance decimal.Decimal `gorm:"column:medical_allowance;type:numeric(14,2);not null"`
	SpecialAllowance decimal.Decimal `gorm:"column:special_allowance;type:numeric(14,2);not null"`

	// Overrides kept for reference; statutory amounts come from the rule set.
	ProfessionalTax decimal.Decimal `gorm:"column:professional_tax;type:numeric(14,2);not null"`
	ProvidentFund   decimal.Decimal `gorm:"column:provident_fund;type:numeric(14,2);not null"`
	Insurance       decimal.Decimal `gorm:"column:insurance;type:numeric(14,2);not null"`

	OvertimeRate decimal.Decimal `gorm:"column:overtime_rate;type:numeric(14,2);not null"`
	IsActive     bool            `gorm:"column:is_active;not null"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	EmployeeCount int64 `gorm:"column:employee_count;->;-:migration"`
}

func (SalaryStructure) TableName() string {
	return "salary_structures"
}

// GrossMonthly is the sum of all earning components.
func (s SalaryStructure) GrossMonthly() decimal.Decimal {
	return s.Basic.
		Add(s.HRA).
		Add(s.Conveyance).
		Add(s.MedicalAllowance).
		Add(s.SpecialAllowance)
}

func (s SalaryStructure) BasicPay() decimal.Decimal {
	return s.Basic
}

func (s SalaryStructure) amounts() []decimal.Decimal {
	return []decimal.Decimal{
		s.Basic, s.HRA, s.Conveyance, s.MedicalAllowance, s.SpecialAllowance,
		s.ProfessionalTax, s.ProvidentFund, s.Insurance, s.OvertimeRate,
	}
}
