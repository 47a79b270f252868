package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusHalfDay = "half_day"
	StatusLeave   = "leave"
)

// Attendance is one employee day. Rows are written by the attendance module;
// payroll only reads them.
type Attendance struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;index:idx_attendances_employee_date"`
	Date       time.Time  `gorm:"column:date;type:date;not null;index:idx_attendances_employee_date"`
	CheckIn    *time.Time `gorm:"column:check_in"`
	CheckOut   *time.Time `gorm:"column:check_out"`
	Status     string     `gorm:"column:status;type:varchar(20);not null;default:'present'"`
	Notes      *string    `gorm:"column:notes;type:text"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at"`
}

func (Attendance) TableName() string {
	return "attendances"
}
