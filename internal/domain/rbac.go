package domain

// Roles carried in the access token.
const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

// EnforceRequest asks whether Role may perform Action on Resource.
// EmployeeID is only used for logging.
type EnforceRequest struct {
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role" binding:"required"`
	Resource   string `json:"resource" binding:"required"`
	Action     string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionResponse struct {
	Role     string `json:"role"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}
