package rbac

import "hris-payroll/internal/domain"

// Resources and actions guarded by RBACAuthorize.
const (
	ResourceSalaryStructure = "salary_structure"
	ResourcePayrollRun      = "payroll_run"
	ResourcePayrollEntry    = "payroll_entry"

	ActionCreate    = "create"
	ActionUpdate    = "update"
	ActionDelete    = "delete"
	ActionCalculate = "calculate"
	ActionApprove   = "approve"
	ActionProcess   = "process"
)

// RolePermission is a single p line; it is also the role_permissions row.
type RolePermission struct {
	ID       string `gorm:"primaryKey;type:uuid"`
	Role     string `gorm:"size:50;not null;uniqueIndex:uq_role_permission"`
	Resource string `gorm:"size:100;not null;uniqueIndex:uq_role_permission"`
	Action   string `gorm:"size:50;not null;uniqueIndex:uq_role_permission"`
}

func (RolePermission) TableName() string { return "role_permissions" }

// RoleInheritance makes Role inherit every permission of Parent.
type RoleInheritance struct {
	Role   string
	Parent string
}

func DefaultPermissions() []RolePermission {
	return []RolePermission{
		{Role: domain.RoleHR, Resource: ResourceSalaryStructure, Action: ActionCreate},
		{Role: domain.RoleHR, Resource: ResourceSalaryStructure, Action: ActionUpdate},
		{Role: domain.RoleHR, Resource: ResourcePayrollRun, Action: ActionCreate},
		{Role: domain.RoleHR, Resource: ResourcePayrollRun, Action: ActionCalculate},
		{Role: domain.RoleHR, Resource: ResourcePayrollRun, Action: ActionApprove},
		{Role: domain.RoleHR, Resource: ResourcePayrollEntry, Action: ActionUpdate},

		{Role: domain.RoleAdmin, Resource: ResourceSalaryStructure, Action: ActionDelete},
		{Role: domain.RoleAdmin, Resource: ResourcePayrollRun, Action: ActionProcess},
		{Role: domain.RoleAdmin, Resource: ResourcePayrollRun, Action: ActionDelete},
	}
}

func DefaultInheritance() []RoleInheritance {
	return []RoleInheritance{
		{Role: domain.RoleAdmin, Parent: domain.RoleHR},
	}
}
