package leave

import (
	"context"
	"database/sql"
	"time"

	"hris-payroll/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindApprovedOverlapping(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]Leave, error)
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

// FindApprovedOverlapping returns approved requests whose [start_date,
// end_date] intersects [start, end]. Overlapping requests are all returned.
func (r *repository) FindApprovedOverlapping(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Order("start_date ASC").
		Find(&leaves).Error
	return leaves, err
}
