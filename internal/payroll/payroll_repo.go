package payroll

import (
	"context"
	"database/sql"
	"time"

	"hris-payroll/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const runWithEntryCount = "payroll_runs.*, " +
	"(SELECT COUNT(*) FROM payroll_entries WHERE payroll_entries.payroll_run_id = payroll_runs.id) AS entry_count"

const entryInsertBatch = 200

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateRun(ctx context.Context, run *PayrollRun) error
	FindAllRuns(ctx context.Context, filter RunFilter) ([]PayrollRun, error)
	FindRunByID(ctx context.Context, id string) (*PayrollRun, error)
	LockRunByID(ctx context.Context, id string) (*PayrollRun, error)
	FindDraftRunsBetween(ctx context.Context, start, end time.Time) ([]PayrollRun, error)
	UpdateRunStatus(ctx context.Context, run *PayrollRun, from RunStatus) error
	DeleteRun(ctx context.Context, id string) error

	CountEntries(ctx context.Context, runID string) (int64, error)
	ReplaceEntries(ctx context.Context, runID string, entries []PayrollEntry) error
	FindEntriesByRun(ctx context.Context, runID string) ([]PayrollEntry, error)
	ReplaceEmployeeEntry(ctx context.Context, runID, employeeID string, entry *PayrollEntry) error
	FindEntryRunID(ctx context.Context, id string) (string, error)
	FindEntryByID(ctx context.Context, id string) (*PayrollEntry, error)
	FindEntryByRunAndEmployee(ctx context.Context, runID, employeeID string) (*PayrollEntry, error)
	UpdateEntry(ctx context.Context, entry *PayrollEntry) error
	FindEntriesByEmployee(ctx context.Context, employeeID string) ([]PayrollEntry, error)
	SummaryRowsByRun(ctx context.Context, runID string) ([]DepartmentSummaryRow, error)
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

func (r *repository) CreateRun(ctx context.Context, run *PayrollRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *repository) FindAllRuns(ctx context.Context, filter RunFilter) ([]PayrollRun, error) {
	db := r.db.WithContext(ctx).Select(runWithEntryCount)
	if filter.Status != "" {
		db = db.Where("payroll_runs.status = ?", filter.Status)
	}
	if filter.Year != 0 {
		db = db.Where("payroll_runs.year = ?", filter.Year)
	}

	var runs []PayrollRun
	err := db.Order("payroll_runs.year DESC, payroll_runs.month DESC").Find(&runs).Error
	return runs, err
}

func (r *repository) FindRunByID(ctx context.Context, id string) (*PayrollRun, error) {
	var run PayrollRun
	err := r.db.WithContext(ctx).
		Select(runWithEntryCount).
		Where("payroll_runs.id = ?", id).
		First(&run).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// LockRunByID reads the run with SELECT ... FOR UPDATE. Only meaningful
// inside a transaction.
func (r *repository) LockRunByID(ctx context.Context, id string) (*PayrollRun, error) {
	var run PayrollRun
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&run).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// FindDraftRunsBetween returns draft runs whose month falls within the
// months of start and end, oldest first.
func (r *repository) FindDraftRunsBetween(ctx context.Context, start, end time.Time) ([]PayrollRun, error) {
	from := start.Year()*12 + int(start.Month())
	to := end.Year()*12 + int(end.Month())

	var runs []PayrollRun
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusDraft).
		Where("(year * 12 + month) BETWEEN ? AND ?", from, to).
		Order("year ASC, month ASC").
		Find(&runs).Error
	return runs, err
}

// UpdateRunStatus writes the run's lifecycle columns and bumps its version,
// only if the stored status is still from.
func (r *repository) UpdateRunStatus(ctx context.Context, run *PayrollRun, from RunStatus) error {
	run.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).
		Model(&PayrollRun{}).
		Where("id = ? AND status = ?", run.ID, from).
		Updates(map[string]any{
			"status":       run.Status,
			"version":      gorm.Expr("version + 1"),
			"approved_by":  run.ApprovedBy,
			"approved_at":  run.ApprovedAt,
			"processed_at": run.ProcessedAt,
			"updated_at":   run.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRunStatusChanged
	}
	run.Version++
	return nil
}

func (r *repository) DeleteRun(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("payroll_run_id = ?", id).Delete(&PayrollEntry{}).Error; err != nil {
		return err
	}

	res := db.Delete(&PayrollRun{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CountEntries(ctx context.Context, runID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PayrollEntry{}).
		Where("payroll_run_id = ?", runID).
		Count(&count).Error
	return count, err
}

// ReplaceEntries deletes the run's entries and inserts entries in their place.
func (r *repository) ReplaceEntries(ctx context.Context, runID string, entries []PayrollEntry) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("payroll_run_id = ?", runID).Delete(&PayrollEntry{}).Error; err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	return db.Omit(clause.Associations).CreateInBatches(entries, entryInsertBatch).Error
}

func (r *repository) FindEntriesByRun(ctx context.Context, runID string) ([]PayrollEntry, error) {
	var entries []PayrollEntry
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("payroll_run_id = ?", runID).
		Order("created_at ASC, id ASC").
		Find(&entries).Error
	return entries, err
}

// ReplaceEmployeeEntry swaps one employee's entry in a run. A nil entry
// only removes the existing one.
func (r *repository) ReplaceEmployeeEntry(ctx context.Context, runID, employeeID string, entry *PayrollEntry) error {
	db := r.db.WithContext(ctx)
	err := db.Where("payroll_run_id = ? AND employee_id = ?", runID, employeeID).
		Delete(&PayrollEntry{}).Error
	if err != nil {
		return err
	}
	if entry == nil {
		return nil
	}
	return db.Omit(clause.Associations).Create(entry).Error
}

func (r *repository) FindEntryRunID(ctx context.Context, id string) (string, error) {
	var entry PayrollEntry
	err := r.db.WithContext(ctx).
		Select("id", "payroll_run_id").
		First(&entry, "id = ?", id).Error
	if err != nil {
		return "", err
	}
	return entry.PayrollRunID.String(), nil
}

func (r *repository) FindEntryByRunAndEmployee(ctx context.Context, runID, employeeID string) (*PayrollEntry, error) {
	var entry PayrollEntry
	err := r.db.WithContext(ctx).
		Where("payroll_run_id = ? AND employee_id = ?", runID, employeeID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *repository) FindEntryByID(ctx context.Context, id string) (*PayrollEntry, error) {
	var entry PayrollEntry
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry rewrites the computed columns of an existing entry. A missing
// entry is gorm.ErrRecordNotFound; it is never re-inserted.
func (r *repository) UpdateEntry(ctx context.Context, entry *PayrollEntry) error {
	entry.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).
		Model(&PayrollEntry{}).
		Where("id = ? AND payroll_run_id = ?", entry.ID, entry.PayrollRunID).
		Updates(map[string]any{
			"lop_days":         entry.LopDays,
			"lop_overridden":   entry.LopOverridden,
			"deduction_lop":    entry.Deductions.Lop,
			"deduction_pf":     entry.Deductions.PF,
			"deduction_esi":    entry.Deductions.ESI,
			"deduction_pt":     entry.Deductions.PT,
			"deduction_tds":    entry.Deductions.TDS,
			"total_deductions": entry.TotalDeductions,
			"net_salary":       entry.NetSalary,
			"notes":            entry.Notes,
			"updated_at":       entry.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindEntriesByEmployee returns the employee's entries with their run,
// newest period first.
func (r *repository) FindEntriesByEmployee(ctx context.Context, employeeID string) ([]PayrollEntry, error) {
	var entries []PayrollEntry
	err := r.db.WithContext(ctx).
		Joins("JOIN payroll_runs ON payroll_runs.id = payroll_entries.payroll_run_id").
		Preload("Run").
		Where("payroll_entries.employee_id = ?", employeeID).
		Order("payroll_runs.year DESC, payroll_runs.month DESC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) SummaryRowsByRun(ctx context.Context, runID string) ([]DepartmentSummaryRow, error) {
	var rows []DepartmentSummaryRow
	err := r.db.WithContext(ctx).
		Table("payroll_entries").
		Select(`COALESCE(departments.name, 'Unassigned') AS department,
			COUNT(*) AS employee_count,
			SUM(payroll_entries.gross_salary) AS gross_salary,
			SUM(payroll_entries.total_deductions) AS total_deductions,
			SUM(payroll_entries.net_salary) AS net_salary`).
		Joins("LEFT JOIN employees ON employees.id = payroll_entries.employee_id").
		Joins("LEFT JOIN departments ON departments.id = employees.department_id").
		Where("payroll_entries.payroll_run_id = ?", runID).
		Group("COALESCE(departments.name, 'Unassigned')").
		Order("department ASC").
		Scan(&rows).Error
	return rows, err
}
