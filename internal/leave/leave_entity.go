package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

// Leave is a leave request as owned by the leave module.
type Leave struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index:idx_leave_requests_employee_dates"`

	LeaveType string    `gorm:"column:leave_type;type:varchar(30);not null;default:'casual'"`
	StartDate time.Time `gorm:"column:start_date;type:date;not null;index:idx_leave_requests_employee_dates"`
	EndDate   time.Time `gorm:"column:end_date;type:date;not null;index:idx_leave_requests_employee_dates"`
	Days      int       `gorm:"column:days;not null;default:1"`
	Reason    string    `gorm:"column:reason;type:text"`

	Status     string     `gorm:"column:status;type:varchar(20);not null;default:'pending'"`
	ApprovedBy *uuid.UUID `gorm:"column:approved_by;type:uuid"`
	ApprovedAt *time.Time `gorm:"column:approved_at"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Leave) TableName() string {
	return "leave_requests"
}
