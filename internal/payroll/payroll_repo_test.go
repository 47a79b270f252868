package payroll_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hris-payroll/internal/department"
	"hris-payroll/internal/employee"
	"hris-payroll/internal/payroll"
	"hris-payroll/internal/salarystructure"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&salarystructure.SalaryStructure{},
		&department.Department{},
		&employee.Employee{},
		&payroll.PayrollRun{},
		&payroll.PayrollEntry{},
	))
	return db
}

func seedRun(t *testing.T, db *gorm.DB, month, year int, status payroll.RunStatus) payroll.PayrollRun {
	t.Helper()
	run := payroll.PayrollRun{ID: uuid.New(), Month: month, Year: year, Status: status, Version: 1}
	require.NoError(t, db.Create(&run).Error)
	return run
}

func seedEmployee(t *testing.T, db *gorm.DB, name string, departmentID *uuid.UUID) employee.Employee {
	t.Helper()
	emp := employee.Employee{
		ID:               uuid.New(),
		FullName:         name,
		Email:            uuid.NewString() + "@example.com",
		EmploymentStatus: employee.StatusActive,
		DepartmentID:     departmentID,
	}
	require.NoError(t, db.Create(&emp).Error)
	return emp
}

func entryFor(runID, employeeID uuid.UUID, net string) payroll.PayrollEntry {
	gross := dec("28000")
	netSalary := dec(net)
	return payroll.PayrollEntry{
		ID:           uuid.New(),
		PayrollRunID: runID,
		EmployeeID:   employeeID,
		GrossSalary:  gross,
		Deductions: payroll.Deductions{
			Lop: decimal.Zero,
			PF:  dec("2400"),
			ESI: decimal.Zero,
			PT:  dec("100"),
			TDS: decimal.Zero,
		},
		TotalDeductions: gross.Sub(netSalary),
		NetSalary:       netSalary,
	}
}

func TestPayrollRepository_Runs(t *testing.T) {
	db := setupDB(t)
	repo := payroll.NewRepository(db)
	ctx := context.Background()

	jan := seedRun(t, db, 1, 2026, payroll.StatusProcessed)
	feb := seedRun(t, db, 2, 2026, payroll.StatusApproved)
	dec25 := seedRun(t, db, 12, 2025, payroll.StatusDraft)

	t.Run("newest period first", func(t *testing.T) {
		runs, err := repo.FindAllRuns(ctx, payroll.RunFilter{})
		require.NoError(t, err)
		require.Len(t, runs, 3)
		assert.Equal(t, feb.ID, runs[0].ID)
		assert.Equal(t, jan.ID, runs[1].ID)
		assert.Equal(t, dec25.ID, runs[2].ID)
	})

	t.Run("filters", func(t *testing.T) {
		runs, err := repo.FindAllRuns(ctx, payroll.RunFilter{Status: payroll.StatusDraft})
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, dec25.ID, runs[0].ID)

		runs, err = repo.FindAllRuns(ctx, payroll.RunFilter{Year: 2026})
		require.NoError(t, err)
		assert.Len(t, runs, 2)
	})

	t.Run("one run per period", func(t *testing.T) {
		err := repo.CreateRun(ctx, &payroll.PayrollRun{ID: uuid.New(), Month: 2, Year: 2026, Status: payroll.StatusDraft})
		assert.Error(t, err)
	})

	t.Run("draft runs between", func(t *testing.T) {
		runs, err := repo.FindDraftRunsBetween(ctx,
			time.Date(2025, 12, 28, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, dec25.ID, runs[0].ID)

		runs, err = repo.FindDraftRunsBetween(ctx,
			time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Empty(t, runs)
	})
}

func TestPayrollRepository_UpdateRunStatus(t *testing.T) {
	db := setupDB(t)
	repo := payroll.NewRepository(db)
	ctx := context.Background()

	run := seedRun(t, db, 3, 2026, payroll.StatusDraft)
	approver := uuid.New()
	now := time.Now().UTC()

	run.Status = payroll.StatusApproved
	run.ApprovedBy = &approver
	run.ApprovedAt = &now
	require.NoError(t, repo.UpdateRunStatus(ctx, &run, payroll.StatusDraft))

	stored, err := repo.FindRunByID(ctx, run.ID.String())
	require.NoError(t, err)
	assert.Equal(t, payroll.StatusApproved, stored.Status)
	if assert.NotNil(t, stored.ApprovedBy) {
		assert.Equal(t, approver, *stored.ApprovedBy)
	}

	assert.Equal(t, int64(2), stored.Version)
	assert.Equal(t, int64(2), run.Version)

	stale := run
	stale.Status = payroll.StatusApproved
	err = repo.UpdateRunStatus(ctx, &stale, payroll.StatusDraft)
	assert.True(t, errors.Is(err, payroll.ErrRunStatusChanged))

	stored, err = repo.FindRunByID(ctx, run.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.Version)
}

func TestPayrollRepository_Entries(t *testing.T) {
	db := setupDB(t)
	repo := payroll.NewRepository(db)
	ctx := context.Background()

	run := seedRun(t, db, 3, 2026, payroll.StatusDraft)
	ani := seedEmployee(t, db, "Ani", nil)
	budi := seedEmployee(t, db, "Budi", nil)

	require.NoError(t, repo.ReplaceEntries(ctx, run.ID.String(), []payroll.PayrollEntry{
		entryFor(run.ID, ani.ID, "25500"),
		entryFor(run.ID, budi.ID, "23633.33"),
	}))

	count, err := repo.CountEntries(ctx, run.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	replacement := entryFor(run.ID, ani.ID, "25500")
	require.NoError(t, repo.ReplaceEntries(ctx, run.ID.String(), []payroll.PayrollEntry{replacement}))

	entries, err := repo.FindEntriesByRun(ctx, run.ID.String())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, replacement.ID, entries[0].ID)
	if assert.NotNil(t, entries[0].Employee) {
		assert.Equal(t, "Ani", entries[0].Employee.FullName)
	}

	stored, err := repo.FindRunByID(ctx, run.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.EntryCount)

	entry, err := repo.FindEntryByID(ctx, replacement.ID.String())
	require.NoError(t, err)
	notes := "adjusted"
	entry.LopDays = 2
	entry.Notes = &notes
	require.NoError(t, repo.UpdateEntry(ctx, entry))

	entry, err = repo.FindEntryByID(ctx, replacement.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 2, entry.LopDays)
	if assert.NotNil(t, entry.Notes) {
		assert.Equal(t, "adjusted", *entry.Notes)
	}

	_, err = repo.FindEntryByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPayrollRepository_UpdateEntryAfterReplace(t *testing.T) {
	db := setupDB(t)
	repo := payroll.NewRepository(db)
	ctx := context.Background()

	run := seedRun(t, db, 3, 2026, payroll.StatusDraft)
	ani := seedEmployee(t, db, "Ani", nil)

	stale := entryFor(run.ID, ani.ID, "25500")
	require.NoError(t, repo.ReplaceEntries(ctx, run.ID.String(), []payroll.PayrollEntry{stale}))
	fresh := entryFor(run.ID, ani.ID, "23633.33")
	require.NoError(t, repo.ReplaceEntries(ctx, run.ID.String(), []payroll.PayrollEntry{fresh}))

	stale.LopDays = 5
	err := repo.UpdateEntry(ctx, &stale)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	entries, err := repo.FindEntriesByRun(ctx, run.ID.String())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, fresh.ID, entries[0].ID)
	assert.Equal(t, 0, entries[0].LopDays)
}

func TestPayrollRepository_EmployeeEntry(t *testing.T) {
	db := setupDB(t)
	repo := payroll.NewRepository(db)
	ctx := context.Background()

	run := seedRun(t, db, 3, 2026, payroll.StatusDraft)
	ani := seedEmployee(t, db, "Ani", nil)
	budi := seedEmployee(t, db, "Budi", nil)

	aniEntry := entryFor(run.ID, ani.ID, "25500")
	budiEntry := entryFor(run.ID, budi.ID, "25500")
	require.NoError(t, repo.ReplaceEntries(ctx, run.ID.String(), []payroll.PayrollEntry{aniEntry, budiEntry}))

	t.Run("run id of entry", func(t *testing.T) {
		runID, err := repo.FindEntryRunID(ctx, aniEntry.ID.String())
		require.NoError(t, err)
		assert.Equal(t, run.ID.String(), runID)

		_, err = repo.FindEntryRunID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("entry by run and employee", func(t *testing.T) {
		entry, err := repo.FindEntryByRunAndEmployee(ctx, run.ID.String(), budi.ID.String())
		require.NoError(t, err)
		assert.Equal(t, budiEntry.ID, entry.ID)

		_, err = repo.FindEntryByRunAndEmployee(ctx, run.ID.String(), uuid.NewString())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("replace one employee", func(t *testing.T) {
		next := entryFor(run.ID, ani.ID, "23633.33")
		require.NoError(t, repo.ReplaceEmployeeEntry(ctx, run.ID.String(), ani.ID.String(), &next))

		entry, err := repo.FindEntryByRunAndEmployee(ctx, run.ID.String(), ani.ID.String())
		require.NoError(t, err)
		assert.Equal(t, next.ID, entry.ID)
		assert.Equal(t, "23633.33", entry.NetSalary.StringFixed(2))

		entry, err = repo.FindEntryByRunAndEmployee(ctx, run.ID.String(), budi.ID.String())
		require.NoError(t, err)
		assert.Equal(t, budiEntry.ID, entry.ID)
	})

	t.Run("nil entry removes", func(t *testing.T) {
		require.NoError(t, repo.ReplaceEmployeeEntry(ctx, run.ID.String(), budi.ID.String(), nil))

		count, err := repo.CountEntries(ctx, run.ID.String())
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestPayrollRepository_DeleteRun(t *testing.T) {
	db := setupDB(t)
	repo := payroll.NewRepository(db)
	ctx := context.Background()

	run := seedRun(t, db, 3, 2026, payroll.StatusDraft)
	emp := seedEmployee(t, db, "Ani", nil)
	require.NoError(t, repo.ReplaceEntries(ctx, run.ID.String(), []payroll.PayrollEntry{entryFor(run.ID, emp.ID, "25500")}))

	require.NoError(t, repo.DeleteRun(ctx, run.ID.String()))

	count, err := repo.CountEntries(ctx, run.ID.String())
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = repo.FindRunByID(ctx, run.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, repo.DeleteRun(ctx, run.ID.String()), gorm.ErrRecordNotFound)
}

func TestPayrollRepository_FindEntriesByEmployee(t *testing.T) {
	db := setupDB(t)
	repo := payroll.NewRepository(db)
	ctx := context.Background()

	emp := seedEmployee(t, db, "Ani", nil)
	other := seedEmployee(t, db, "Budi", nil)
	feb := seedRun(t, db, 2, 2026, payroll.StatusProcessed)
	mar := seedRun(t, db, 3, 2026, payroll.StatusDraft)

	require.NoError(t, repo.ReplaceEntries(ctx, feb.ID.String(), []payroll.PayrollEntry{
		entryFor(feb.ID, emp.ID, "25500"),
		entryFor(feb.ID, other.ID, "25500"),
	}))
	require.NoError(t, repo.ReplaceEntries(ctx, mar.ID.String(), []payroll.PayrollEntry{
		entryFor(mar.ID, emp.ID, "23633.33"),
	}))

	entries, err := repo.FindEntriesByEmployee(ctx, emp.ID.String())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	if assert.NotNil(t, entries[0].Run) {
		assert.Equal(t, 3, entries[0].Run.Month)
	}
	if assert.NotNil(t, entries[1].Run) {
		assert.Equal(t, payroll.StatusProcessed, entries[1].Run.Status)
	}
}

func TestPayrollRepository_SummaryRowsByRun(t *testing.T) {
	db := setupDB(t)
	repo := payroll.NewRepository(db)
	ctx := context.Background()

	engineering := department.Department{ID: uuid.New(), Name: "Engineering"}
	require.NoError(t, db.Create(&engineering).Error)

	a := seedEmployee(t, db, "Ani", &engineering.ID)
	b := seedEmployee(t, db, "Budi", &engineering.ID)
	c := seedEmployee(t, db, "Citra", nil)
	run := seedRun(t, db, 3, 2026, payroll.StatusDraft)

	require.NoError(t, repo.ReplaceEntries(ctx, run.ID.String(), []payroll.PayrollEntry{
		entryFor(run.ID, a.ID, "25500"),
		entryFor(run.ID, b.ID, "23633.33"),
		entryFor(run.ID, c.ID, "25500"),
	}))

	rows, err := repo.SummaryRowsByRun(ctx, run.ID.String())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Engineering", rows[0].Department)
	assert.Equal(t, int64(2), rows[0].EmployeeCount)
	assert.Equal(t, "56000.00", rows[0].GrossSalary.StringFixed(2))
	assert.Equal(t, "49133.33", rows[0].NetSalary.StringFixed(2))

	assert.Equal(t, "Unassigned", rows[1].Department)
	assert.Equal(t, int64(1), rows[1].EmployeeCount)
	assert.Equal(t, "25500.00", rows[1].NetSalary.StringFixed(2))
}
