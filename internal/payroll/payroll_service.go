package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hris-payroll/internal/attendance"
	"hris-payroll/internal/deduction"
	"hris-payroll/internal/employee"
	"hris-payroll/internal/events"
	"hris-payroll/internal/leave"
	"hris-payroll/internal/lop"
	"hris-payroll/internal/messaging/kafka"
	payrollerrors "hris-payroll/internal/payroll/errors"
	"hris-payroll/internal/shared/contextutil"

	"github.com/divan/num2words"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	SummaryCacheKeyPrefix = "payroll:summary:"
	summaryCacheTTL       = 30 * time.Minute

	aggregateTypeRun = "payroll_run"
)

// SummaryCacheKey is versioned by the run so a mutation makes every earlier
// cached summary unreachable.
func SummaryCacheKey(runID string, version int64) string {
	return fmt.Sprintf("%s%s:v%d", SummaryCacheKeyPrefix, runID, version)
}

type Service interface {
	CreateRun(ctx context.Context, actorID string, req CreateRunRequest) (RunResponse, error)
	GetAllRuns(ctx context.Context, req GetRunsFilterRequest) ([]RunResponse, error)
	GetRunByID(ctx context.Context, id string) (RunResponse, error)
	Calculate(ctx context.Context, runID string) (CalculateResponse, error)
	RecalculateDraftRuns(ctx context.Context, employeeID string, start, end time.Time) (int, error)
	Approve(ctx context.Context, runID, approverID string) (RunResponse, error)
	Process(ctx context.Context, runID, actorID string) (RunResponse, error)
	DeleteRun(ctx context.Context, runID string) error

	GetEntryByID(ctx context.Context, id string) (EntryResponse, error)
	UpdateEntry(ctx context.Context, entryID string, req UpdateEntryRequest) (EntryResponse, error)

	GetSummary(ctx context.Context, runID string) (SummaryResponse, error)
	GetEmployeePayslips(ctx context.Context, employeeID string) ([]PayslipResponse, error)
}

// Dependencies are the collaborators a payroll run reads from. Outbox and
// Redis are optional.
type Dependencies struct {
	Employees  employee.Repository
	Attendance attendance.Repository
	Leaves     leave.Repository
	Engine     *deduction.Engine
	Outbox     kafka.OutboxRepository
	Redis      *redis.Client
}

type service struct {
	db         *sql.DB
	repo       Repository
	employees  employee.Repository
	attendance attendance.Repository
	leaves     leave.Repository
	engine     *deduction.Engine
	outbox     kafka.OutboxRepository
	rdb        *redis.Client
	sf         *singleflight.Group
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(db *sql.DB, repo Repository, deps Dependencies, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}

	engine := deps.Engine
	if engine == nil {
		engine = deduction.NewEngine(nil)
	}

	return &service{
		db:         db,
		repo:       repo,
		employees:  deps.Employees,
		attendance: deps.Attendance,
		leaves:     deps.Leaves,
		engine:     engine,
		outbox:     deps.Outbox,
		rdb:        deps.Redis,
		sf:         &singleflight.Group{},
		logger:     l,
		now:        time.Now,
	}
}

func (s *service) CreateRun(ctx context.Context, actorID string, req CreateRunRequest) (RunResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if req.Month < 1 || req.Month > 12 || req.Year < 2000 || req.Year > 2100 {
		return RunResponse{}, payrollerrors.ErrInvalidPeriod
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create payroll run begin tx failed", zap.Error(err))
		return RunResponse{}, err
	}
	defer tx.Rollback()

	run := &PayrollRun{
		ID:        uuid.New(),
		Month:     req.Month,
		Year:      req.Year,
		Status:    StatusDraft,
		Version:   1,
		CreatedBy: parseActor(actorID),
	}

	if err := s.repo.WithTx(tx).CreateRun(ctx, run); err != nil {
		mapped := mapCreateRunError(err)
		if errors.Is(mapped, payrollerrors.ErrRunExists) {
			log.Warn("create payroll run rejected, period exists",
				zap.Int("month", req.Month),
				zap.Int("year", req.Year),
			)
		} else {
			log.Error("create payroll run persist failed", zap.Error(err))
		}
		return RunResponse{}, mapped
	}

	if err := tx.Commit(); err != nil {
		return RunResponse{}, err
	}

	log.Info("create payroll run success",
		zap.String("run_id", run.ID.String()),
		zap.Int("month", run.Month),
		zap.Int("year", run.Year),
	)
	return mapRunToResponse(*run, nil), nil
}

func (s *service) GetAllRuns(ctx context.Context, req GetRunsFilterRequest) ([]RunResponse, error) {
	status, err := ParseRunStatus(req.Status)
	if err != nil {
		return nil, err
	}

	runs, err := s.repo.FindAllRuns(ctx, RunFilter{Status: status, Year: req.Year})
	if err != nil {
		return nil, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}

	resp := make([]RunResponse, len(runs))
	for i, run := range runs {
		resp[i] = mapRunToResponse(run, nil)
	}
	return resp, nil
}

func (s *service) GetRunByID(ctx context.Context, id string) (RunResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidRunID
	}

	run, err := s.repo.FindRunByID(ctx, id)
	if err != nil {
		return RunResponse{}, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}

	entries, err := s.repo.FindEntriesByRun(ctx, id)
	if err != nil {
		return RunResponse{}, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}

	return mapRunToResponse(*run, entries), nil
}

// Calculate regenerates every entry of a draft run in one transaction.
func (s *service) Calculate(ctx context.Context, runID string) (CalculateResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(runID); err != nil {
		return CalculateResponse{}, payrollerrors.ErrInvalidRunID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("calculate payroll begin tx failed", zap.Error(err))
		return CalculateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.LockRunByID(ctx, runID)
	if err != nil {
		return CalculateResponse{}, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}

	if _, err := run.Status.Apply(ActionCalculate); err != nil {
		log.Warn("calculate payroll rejected",
			zap.String("run_id", runID),
			zap.String("status", string(run.Status)),
		)
		return CalculateResponse{}, err
	}

	entries, err := s.composeRun(ctx, tx, run)
	if err != nil {
		log.Error("calculate payroll compose failed", zap.String("run_id", runID), zap.Error(err))
		return CalculateResponse{}, err
	}

	if err := qtx.ReplaceEntries(ctx, runID, entries); err != nil {
		log.Error("calculate payroll persist failed", zap.String("run_id", runID), zap.Error(err))
		return CalculateResponse{}, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}

	if err := qtx.UpdateRunStatus(ctx, run, StatusDraft); err != nil {
		return CalculateResponse{}, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}

	if err := tx.Commit(); err != nil {
		return CalculateResponse{}, err
	}

	log.Info("calculate payroll success",
		zap.String("run_id", runID),
		zap.Int("entries", len(entries)),
		zap.String("total_net", sumNet(entries).StringFixed(2)),
	)
	return CalculateResponse{RunID: runID, Count: len(entries)}, nil
}

// runComposer computes entries for one run inside its transaction.
type runComposer struct {
	run    *PayrollRun
	period lop.Period
	rules  deduction.RuleSet
	calc   *lop.Calculator
}

func (s *service) newRunComposer(tx *sql.Tx, run *PayrollRun) (*runComposer, error) {
	period := lop.MonthPeriod(run.Year, run.Month)

	rules, err := s.engine.RulesFor(period.Start)
	if err != nil {
		return nil, err
	}

	return &runComposer{
		run:    run,
		period: period,
		rules:  rules,
		calc:   lop.NewCalculator(s.attendance.WithTx(tx), s.leaves.WithTx(tx)),
	}, nil
}

// compose returns nil for an employee who is not paid in this run.
func (c *runComposer) compose(ctx context.Context, emp employee.Employee) (*PayrollEntry, error) {
	if !emp.Eligible() || emp.SalaryStructure == nil {
		return nil, nil
	}

	lopDays, err := c.calc.ComputeLopDays(ctx, emp.ID, c.period)
	if err != nil {
		return nil, err
	}

	entry := composeEntry(c.run.ID, emp.ID, *emp.SalaryStructure, lopDays, c.rules)
	return &entry, nil
}

// composeRun builds one entry per eligible employee for the run's month.
func (s *service) composeRun(ctx context.Context, tx *sql.Tx, run *PayrollRun) ([]PayrollEntry, error) {
	composer, err := s.newRunComposer(tx, run)
	if err != nil {
		return nil, err
	}

	employees, err := s.employees.WithTx(tx).FindEligibleForPayroll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load eligible employees: %w", err)
	}

	entries := make([]PayrollEntry, 0, len(employees))
	for _, emp := range employees {
		entry, err := composer.compose(ctx, emp)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			entries = append(entries, *entry)
		}
	}
	return entries, nil
}

// RecalculateDraftRuns refreshes one employee's entry in every draft run
// whose month intersects [start, end]. Entries with a manual LOP override
// and the entries of other employees are left alone. Runs approved in the
// meantime are skipped.
func (s *service) RecalculateDraftRuns(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return 0, payrollerrors.ErrInvalidEmployeeID
	}

	runs, err := s.repo.FindDraftRunsBetween(ctx, start, end)
	if err != nil {
		return 0, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}

	recalculated := 0
	for _, run := range runs {
		changed, err := s.recalculateEmployee(ctx, run.ID.String(), empID)
		switch {
		case err == nil:
			if changed {
				recalculated++
			}
		case errors.Is(err, payrollerrors.ErrCalculateOnlyDraft), errors.Is(err, payrollerrors.ErrRunNotFound):
			log.Info("skip recalculation, run no longer draft", zap.String("run_id", run.ID.String()))
		default:
			return recalculated, err
		}
	}
	return recalculated, nil
}

// recalculateEmployee reports whether the employee's entry in the run changed.
func (s *service) recalculateEmployee(ctx context.Context, runID string, employeeID uuid.UUID) (bool, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.LockRunByID(ctx, runID)
	if err != nil {
		return false, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}
	if _, err := run.Status.Apply(ActionCalculate); err != nil {
		return false, err
	}

	existing, err := qtx.FindEntryByRunAndEmployee(ctx, runID, employeeID.String())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if existing != nil && existing.LopOverridden {
		log.Info("keep payroll entry with manual lop override",
			zap.String("run_id", runID),
			zap.String("entry_id", existing.ID.String()),
		)
		return false, nil
	}

	var next *PayrollEntry
	emp, err := s.employees.WithTx(tx).FindByID(ctx, employeeID.String())
	switch {
	case err == nil:
		composer, err := s.newRunComposer(tx, run)
		if err != nil {
			return false, err
		}
		if next, err = composer.compose(ctx, *emp); err != nil {
			return false, err
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return false, err
	}

	if existing == nil && next == nil {
		return false, nil
	}
	if existing != nil && next != nil {
		next.Notes = existing.Notes
	}

	if err := qtx.ReplaceEmployeeEntry(ctx, runID, employeeID.String(), next); err != nil {
		return false, mapRepositoryError(err, payrollerrors.ErrEntryNotFound)
	}

	if err := qtx.UpdateRunStatus(ctx, run, StatusDraft); err != nil {
		return false, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	log.Info("recalculate payroll entry success",
		zap.String("run_id", runID),
		zap.String("employee_id", employeeID.String()),
		zap.Bool("removed", next == nil),
	)
	return true, nil
}

func (s *service) Approve(ctx context.Context, runID, approverID string) (RunResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(runID); err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidRunID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("approve payroll begin tx failed", zap.Error(err))
		return RunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.LockRunByID(ctx, runID)
	if err != nil {
		return RunResponse{}, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}

	from := run.Status
	next, err := from.Apply(ActionApprove)
	if err != nil {
		log.Warn("approve payroll rejected", zap.String("run_id", runID), zap.String("status", string(from)))
		return RunResponse{}, err
	}

	count, err := qtx.CountEntries(ctx, runID)
	if err != nil {
		return RunResponse{}, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}
	if count == 0 {
		log.Warn("approve payroll rejected, run has no entries", zap.String("run_id", runID))
		return RunResponse{}, payrollerrors.ErrApproveEmptyRun
	}

	now := s.now().UTC()
	run.Status = next
	run.ApprovedBy = parseActor(approverID)
	run.ApprovedAt = &now
	run.EntryCount = count

	if err := qtx.UpdateRunStatus(ctx, run, from); err != nil {
		return RunResponse{}, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, run, events.PayrollRunApproved, approverID); err != nil {
		log.Error("approve payroll outbox persist failed", zap.String("run_id", runID), zap.Error(err))
		return RunResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RunResponse{}, err
	}

	log.Info("approve payroll success",
		zap.String("run_id", runID),
		zap.String("approved_by", approverID),
		zap.Int64("entries", count),
	)
	return mapRunToResponse(*run, nil), nil
}

func (s *service) Process(ctx context.Context, runID, actorID string) (RunResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(runID); err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidRunID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("process payroll begin tx failed", zap.Error(err))
		return RunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.LockRunByID(ctx, runID)
	if err != nil {
		return RunResponse{}, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}

	from := run.Status
	next, err := from.Apply(ActionProcess)
	if err != nil {
		log.Warn("process payroll rejected", zap.String("run_id", runID), zap.String("status", string(from)))
		return RunResponse{}, err
	}

	count, err := qtx.CountEntries(ctx, runID)
	if err != nil {
		return RunResponse{}, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}

	now := s.now().UTC()
	run.Status = next
	run.ProcessedAt = &now
	run.EntryCount = count

	if err := qtx.UpdateRunStatus(ctx, run, from); err != nil {
		return RunResponse{}, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, run, events.PayrollRunProcessed, actorID); err != nil {
		log.Error("process payroll outbox persist failed", zap.String("run_id", runID), zap.Error(err))
		return RunResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RunResponse{}, err
	}

	log.Info("process payroll success", zap.String("run_id", runID), zap.String("processed_by", actorID))
	return mapRunToResponse(*run, nil), nil
}

func (s *service) DeleteRun(ctx context.Context, runID string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(runID); err != nil {
		return payrollerrors.ErrInvalidRunID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("delete payroll begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.LockRunByID(ctx, runID)
	if err != nil {
		return mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}

	if _, err := run.Status.Apply(ActionDelete); err != nil {
		log.Warn("delete payroll rejected", zap.String("run_id", runID), zap.String("status", string(run.Status)))
		return err
	}

	if err := qtx.DeleteRun(ctx, runID); err != nil {
		return mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Info("delete payroll success", zap.String("run_id", runID))
	return nil
}

func (s *service) GetEntryByID(ctx context.Context, id string) (EntryResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EntryResponse{}, payrollerrors.ErrInvalidEntryID
	}

	entry, err := s.repo.FindEntryByID(ctx, id)
	if err != nil {
		return EntryResponse{}, mapRepositoryError(err, payrollerrors.ErrEntryNotFound)
	}
	return mapEntryToResponse(*entry), nil
}

// UpdateEntry overrides LOP days and/or notes of an entry in a draft run
// and re-derives its deductions from the stored gross.
func (s *service) UpdateEntry(ctx context.Context, entryID string, req UpdateEntryRequest) (EntryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(entryID); err != nil {
		return EntryResponse{}, payrollerrors.ErrInvalidEntryID
	}
	if req.LopDays != nil && (*req.LopDays < 0 || *req.LopDays > 31) {
		return EntryResponse{}, payrollerrors.ErrInvalidLopDays
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update payroll entry begin tx failed", zap.Error(err))
		return EntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	runID, err := qtx.FindEntryRunID(ctx, entryID)
	if err != nil {
		return EntryResponse{}, mapRepositoryError(err, payrollerrors.ErrEntryNotFound)
	}

	run, err := qtx.LockRunByID(ctx, runID)
	if err != nil {
		return EntryResponse{}, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}

	if _, err := run.Status.Apply(ActionEditEntry); err != nil {
		log.Warn("update payroll entry rejected",
			zap.String("entry_id", entryID),
			zap.String("status", string(run.Status)),
		)
		return EntryResponse{}, err
	}

	// Read under the run lock; a calculation that committed meanwhile has
	// replaced the entry set.
	entry, err := qtx.FindEntryByID(ctx, entryID)
	if err != nil {
		return EntryResponse{}, mapRepositoryError(err, payrollerrors.ErrEntryNotFound)
	}

	emp, err := s.employees.WithTx(tx).FindByID(ctx, entry.EmployeeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EntryResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		return EntryResponse{}, err
	}

	rules, err := s.engine.RulesFor(lop.MonthPeriod(run.Year, run.Month).Start)
	if err != nil {
		return EntryResponse{}, err
	}

	var structure deduction.Structure
	if emp.SalaryStructure != nil {
		structure = emp.SalaryStructure
	}

	lopDays := entry.LopDays
	if req.LopDays != nil {
		lopDays = *req.LopDays
		entry.LopOverridden = true
	}
	recomposeEntry(entry, lopDays, structure, rules)

	if req.Notes != nil {
		entry.Notes = req.Notes
	}

	if err := qtx.UpdateEntry(ctx, entry); err != nil {
		log.Error("update payroll entry persist failed", zap.String("entry_id", entryID), zap.Error(err))
		return EntryResponse{}, mapRepositoryError(err, payrollerrors.ErrEntryNotFound)
	}

	if err := qtx.UpdateRunStatus(ctx, run, StatusDraft); err != nil {
		return EntryResponse{}, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}

	if err := tx.Commit(); err != nil {
		return EntryResponse{}, err
	}

	log.Info("update payroll entry success",
		zap.String("entry_id", entryID),
		zap.Int("lop_days", entry.LopDays),
		zap.String("net_salary", entry.NetSalary.StringFixed(2)),
	)
	return mapEntryToResponse(*entry), nil
}

// GetSummary totals a run per department. Results are cached per run
// version.
func (s *service) GetSummary(ctx context.Context, runID string) (SummaryResponse, error) {
	if _, err := uuid.Parse(runID); err != nil {
		return SummaryResponse{}, payrollerrors.ErrInvalidRunID
	}

	run, err := s.repo.FindRunByID(ctx, runID)
	if err != nil {
		return SummaryResponse{}, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
	}

	cacheKey := SummaryCacheKey(runID, run.Version)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp SummaryResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (any, error) {
		rows, err := s.repo.SummaryRowsByRun(ctx, runID)
		if err != nil {
			return nil, mapRepositoryError(err, payrollerrors.ErrRunNotFound)
		}

		resp := buildSummary(*run, rows)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, summaryCacheTTL).Err(); err != nil {
					contextutil.GetLogger(ctx, s.logger).Warn("cache payroll summary failed",
						zap.String("key", cacheKey),
						zap.Error(err),
					)
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return SummaryResponse{}, err
	}

	return v.(SummaryResponse), nil
}

func (s *service) GetEmployeePayslips(ctx context.Context, employeeID string) ([]PayslipResponse, error) {
	if employeeID == "" {
		return nil, payrollerrors.ErrNoEmployeeRecord
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, payrollerrors.ErrNoEmployeeRecord
	}

	entries, err := s.repo.FindEntriesByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err, payrollerrors.ErrEntryNotFound)
	}

	resp := make([]PayslipResponse, 0, len(entries))
	for _, e := range entries {
		slip := PayslipResponse{
			EntryResponse:    mapEntryToResponse(e),
			NetSalaryInWords: amountInWords(e.NetSalary),
		}
		if e.Run != nil {
			slip.Month = e.Run.Month
			slip.Year = e.Run.Year
			slip.RunStatus = string(e.Run.Status)
		}
		resp = append(resp, slip)
	}
	return resp, nil
}

func (s *service) enqueueLifecycleEvent(ctx context.Context, tx *sql.Tx, run *PayrollRun, eventType, actorID string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.PayrollRunLifecycleEvent{
		EventType:  eventType,
		RunID:      run.ID.String(),
		Month:      run.Month,
		Year:       run.Year,
		Status:     string(run.Status),
		EntryCount: run.EntryCount,
		ActorID:    actorID,
		RequestID:  contextutil.GetRequestID(ctx),
		OccurredAt: s.now().UTC(),
	}

	outboxEvent, err := kafka.NewOutboxEvent(ctx, aggregateTypeRun, run.ID.String(), eventType, events.PayrollRunLifecycleTopic, event)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, outboxEvent)
}

func parseActor(actorID string) *uuid.UUID {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return nil
	}
	return &id
}

func buildSummary(run PayrollRun, rows []DepartmentSummaryRow) SummaryResponse {
	resp := SummaryResponse{
		RunID:       run.ID.String(),
		Month:       run.Month,
		Year:        run.Year,
		Status:      string(run.Status),
		Departments: make([]DepartmentSummary, 0, len(rows)),
	}

	gross, deductions, net := decimal.Zero, decimal.Zero, decimal.Zero
	for _, row := range rows {
		resp.EmployeeCount += row.EmployeeCount
		gross = gross.Add(row.GrossSalary)
		deductions = deductions.Add(row.TotalDeductions)
		net = net.Add(row.NetSalary)

		resp.Departments = append(resp.Departments, DepartmentSummary{
			Department:      row.Department,
			EmployeeCount:   row.EmployeeCount,
			GrossSalary:     row.GrossSalary.StringFixed(2),
			TotalDeductions: row.TotalDeductions.StringFixed(2),
			NetSalary:       row.NetSalary.StringFixed(2),
		})
	}

	resp.GrossSalary = gross.StringFixed(2)
	resp.TotalDeductions = deductions.StringFixed(2)
	resp.NetSalary = net.StringFixed(2)
	return resp
}

// amountInWords spells the whole part and appends hundredths as a fraction.
func amountInWords(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	whole := rounded.Truncate(0)
	cents := rounded.Sub(whole).Abs().Mul(decimal.NewFromInt(100)).IntPart()
	return fmt.Sprintf("%s and %02d/100", num2words.Convert(int(whole.IntPart())), cents)
}

func mapRunToResponse(run PayrollRun, entries []PayrollEntry) RunResponse {
	resp := RunResponse{
		ID:         run.ID.String(),
		Month:      run.Month,
		Year:       run.Year,
		Status:     string(run.Status),
		EntryCount: run.EntryCount,
		CreatedAt:  run.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  run.UpdatedAt.Format(time.RFC3339),
	}

	if run.CreatedBy != nil {
		v := run.CreatedBy.String()
		resp.CreatedBy = &v
	}
	if run.ApprovedBy != nil {
		v := run.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if run.ApprovedAt != nil {
		v := run.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	if run.ProcessedAt != nil {
		v := run.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &v
	}

	if entries != nil {
		resp.Entries = make([]EntryResponse, len(entries))
		for i, e := range entries {
			resp.Entries[i] = mapEntryToResponse(e)
		}
		resp.EntryCount = int64(len(entries))
	}

	return resp
}

func mapEntryToResponse(entry PayrollEntry) EntryResponse {
	resp := EntryResponse{
		ID:            entry.ID.String(),
		PayrollRunID:  entry.PayrollRunID.String(),
		EmployeeID:    entry.EmployeeID.String(),
		GrossSalary:   entry.GrossSalary.StringFixed(2),
		LopDays:       entry.LopDays,
		LopOverridden: entry.LopOverridden,
		LopDeduction:  entry.Deductions.Lop.StringFixed(2),
		Deductions: DeductionsResponse{
			Lop: entry.Deductions.Lop.StringFixed(2),
			PF:  entry.Deductions.PF.StringFixed(2),
			ESI: entry.Deductions.ESI.StringFixed(2),
			PT:  entry.Deductions.PT.StringFixed(2),
			TDS: entry.Deductions.TDS.StringFixed(2),
		},
		TotalDeductions: entry.TotalDeductions.StringFixed(2),
		NetSalary:       entry.NetSalary.StringFixed(2),
		Notes:           entry.Notes,
		UpdatedAt:       entry.UpdatedAt.Format(time.RFC3339),
	}
	if entry.Employee != nil {
		resp.EmployeeName = entry.Employee.FullName
	}
	return resp
}
