package payroll

import (
	"errors"
	"strings"

	payrollerrors "hris-payroll/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrRunStatusChanged is returned by the repository when a guarded status
// update matched no row.
var ErrRunStatusChanged = errors.New("payroll run status changed")

const runPeriodConstraint = "uq_payroll_run_period"

// mapRepositoryError maps run lookups; notFound picks the sentinel for a
// missing row. Only the run period constraint becomes ErrRunExists.
func mapRepositoryError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	if errors.Is(err, ErrRunStatusChanged) {
		return payrollerrors.ErrRunChanged
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == runPeriodConstraint {
		return payrollerrors.ErrRunExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, runPeriodConstraint) {
		return payrollerrors.ErrRunExists
	}

	return err
}

// mapCreateRunError also treats a translated duplicate key as the period
// constraint, the only unique index a new run can hit.
func mapCreateRunError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return payrollerrors.ErrRunExists
	}
	return mapRepositoryError(err, payrollerrors.ErrRunNotFound)
}
