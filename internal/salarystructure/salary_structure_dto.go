package salarystructure

import "github.com/shopspring/decimal"

type CreateSalaryStructureRequest struct {
	Name             string          `json:"name" binding:"required,max=120"`
	Description      *string         `json:"description"`
	Basic            decimal.Decimal `json:"basic"`
	HRA              decimal.Decimal `json:"hra"`
	Conveyance       decimal.Decimal `json:"conveyance"`
	MedicalAllowance decimal.Decimal `json:"medical_allowance"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`
	ProfessionalTax  decimal.Decimal `json:"professional_tax"`
	ProvidentFund    decimal.Decimal `json:"provident_fund"`
	Insurance        decimal.Decimal `json:"insurance"`
	OvertimeRate     decimal.Decimal `json:"overtime_rate"`
	IsActive         *bool           `json:"is_active"`
}

// UpdateSalaryStructureRequest is a partial update; nil fields are left as is.
type UpdateSalaryStructureRequest struct {
	Name             *string          `json:"name" binding:"omitempty,min=1,max=120"`
	Description      *string          `json:"description"`
	Basic            *decimal.Decimal `json:"basic"`
	HRA              *decimal.Decimal `json:"hra"`
	Conveyance       *decimal.Decimal `json:"conveyance"`
	MedicalAllowance *decimal.Decimal `json:"medical_allowance"`
	SpecialAllowance *decimal.Decimal `json:"special_allowance"`
	ProfessionalTax  *decimal.Decimal `json:"professional_tax"`
	ProvidentFund    *decimal.Decimal `json:"provident_fund"`
	Insurance        *decimal.Decimal `json:"insurance"`
	OvertimeRate     *decimal.Decimal `json:"overtime_rate"`
	IsActive         *bool            `json:"is_active"`
}

type SalaryStructureResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Description      *string `json:"description,omitempty"`
	Basic            string  `json:"basic"`
	HRA              string  `json:"hra"`
	Conveyance       string  `json:"conveyance"`
	MedicalAllowance string  `json:"medical_allowance"`
	SpecialAllowance string  `json:"special_allowance"`
	ProfessionalTax  string  `json:"professional_tax"`
	ProvidentFund    string  `json:"provident_fund"`
	Insurance        string  `json:"insurance"`
	OvertimeRate     string  `json:"overtime_rate"`
	GrossMonthly     string  `json:"gross_monthly"`
	IsActive         bool    `json:"is_active"`
	EmployeeCount    int64   `json:"employee_count"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}
