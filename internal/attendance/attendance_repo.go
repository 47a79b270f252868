package attendance

import (
	"context"
	"database/sql"
	"time"

	"hris-payroll/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CountAbsences(ctx context.Context, employeeID uuid.UUID, start, end time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

// CountAbsences counts absent days in the inclusive range [start, end].
// Bounds are expected as UTC midnights.
func (r *repository) CountAbsences(ctx context.Context, employeeID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusAbsent).
		Where("date >= ? AND date <= ?", start, end).
		Count(&count).Error
	return count, err
}
