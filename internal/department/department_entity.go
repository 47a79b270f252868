package department

import (
	"time"

	"github.com/google/uuid"
)

// Department is read by payroll only to group summaries.
type Department struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Department) TableName() string {
	return "departments"
}
