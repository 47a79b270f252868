package payroll

type CreateRunRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
}

type GetRunsFilterRequest struct {
	Status string `form:"status"`
	Year   int    `form:"year" binding:"omitempty,min=2000,max=2100"`
}

// UpdateEntryRequest changes LOP days and/or notes; nil fields are kept.
type UpdateEntryRequest struct {
	LopDays *int    `json:"lop_days" binding:"omitempty,min=0,max=31"`
	Notes   *string `json:"notes" binding:"omitempty,max=1000"`
}

type RunResponse struct {
	ID          string          `json:"id"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Status      string          `json:"status"`
	EntryCount  int64           `json:"entry_count"`
	CreatedBy   *string         `json:"created_by,omitempty"`
	ApprovedBy  *string         `json:"approved_by,omitempty"`
	ApprovedAt  *string         `json:"approved_at,omitempty"`
	ProcessedAt *string         `json:"processed_at,omitempty"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
	Entries     []EntryResponse `json:"entries,omitempty"`
}

type DeductionsResponse struct {
	Lop string `json:"lop"`
	PF  string `json:"pf"`
	ESI string `json:"esi"`
	PT  string `json:"pt"`
	TDS string `json:"tds"`
}

type EntryResponse struct {
	ID              string             `json:"id"`
	PayrollRunID    string             `json:"payroll_run_id"`
	EmployeeID      string             `json:"employee_id"`
	EmployeeName    string             `json:"employee_name,omitempty"`
	GrossSalary     string             `json:"gross_salary"`
	LopDays         int                `json:"lop_days"`
	LopOverridden   bool               `json:"lop_overridden"`
	LopDeduction    string             `json:"lop_deduction"`
	Deductions      DeductionsResponse `json:"deductions"`
	TotalDeductions string             `json:"total_deductions"`
	NetSalary       string             `json:"net_salary"`
	Notes           *string            `json:"notes,omitempty"`
	UpdatedAt       string             `json:"updated_at"`
}

type CalculateResponse struct {
	RunID string `json:"run_id"`
	Count int    `json:"count"`
}

type DepartmentSummary struct {
	Department      string `json:"department"`
	EmployeeCount   int64  `json:"employee_count"`
	GrossSalary     string `json:"gross_salary"`
	TotalDeductions string `json:"total_deductions"`
	NetSalary       string `json:"net_salary"`
}

type SummaryResponse struct {
	RunID           string              `json:"run_id"`
	Month           int                 `json:"month"`
	Year            int                 `json:"year"`
	Status          string              `json:"status"`
	EmployeeCount   int64               `json:"employee_count"`
	GrossSalary     string              `json:"gross_salary"`
	TotalDeductions string              `json:"total_deductions"`
	NetSalary       string              `json:"net_salary"`
	Departments     []DepartmentSummary `json:"departments"`
}

type PayslipResponse struct {
	EntryResponse
	Month            int    `json:"month"`
	Year             int    `json:"year"`
	RunStatus        string `json:"run_status"`
	NetSalaryInWords string `json:"net_salary_in_words"`
}
